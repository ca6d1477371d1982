// Command attackviz renders one square's mask from a generated table file
// as a board diagram: plain text on stdout by default, SVG or PNG on
// request. It is the quickest way to eyeball a table that fails a digest
// check or a downstream test.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/attacktables/internal/board"
	"github.com/hailam/attacktables/internal/table"
	"github.com/hailam/attacktables/internal/viz"
)

var (
	tablePath = flag.String("table", "", "path to a table file (required)")
	squareStr = flag.String("square", "e4", "origin square, algebraic")
	svgOut    = flag.String("svg", "", "write an SVG diagram to this path")
	pngOut    = flag.String("png", "", "write a PNG diagram to this path")
	size      = flag.Int("size", viz.DefaultSize, "diagram edge in pixels")
)

func main() {
	flag.Parse()

	if *tablePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tab, err := table.LoadFile(*tablePath)
	if err != nil {
		log.Fatalf("attackviz: %v", err)
	}
	sq, err := board.ParseSquare(*squareStr)
	if err != nil {
		log.Fatalf("attackviz: %v", err)
	}

	d := viz.NewDiagram(sq, tab.AttacksFrom(sq), *size)

	wrote := false
	if *svgOut != "" {
		if err := writeTo(*svgOut, d.WriteSVG); err != nil {
			log.Fatalf("attackviz: %v", err)
		}
		wrote = true
	}
	if *pngOut != "" {
		if err := writeTo(*pngOut, d.WritePNG); err != nil {
			log.Fatalf("attackviz: %v", err)
		}
		wrote = true
	}
	if !wrote {
		fmt.Print(d.Text())
	}
}

func writeTo(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
