// Package viz renders attack masks as board diagrams for debugging and
// documentation: SVG vector output, a rasterized PNG form of the same
// drawing, and a fixed-width text board.
package viz

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/attacktables/internal/board"
)

// DefaultSize is the default board edge in pixels.
const DefaultSize = 400

const (
	lightFill  = "fill:rgb(240,217,181)"
	darkFill   = "fill:rgb(181,136,99)"
	attackFill = "fill:rgb(106,168,79);fill-opacity:0.8"
	originFill = "fill:rgb(217,83,79)"
)

// Diagram describes one rendered mask: the squares to highlight and the
// origin square the mask was computed from.
type Diagram struct {
	Origin board.Square
	Mask   board.Bitboard
	Size   int
}

// NewDiagram builds a diagram for a mask queried at origin. A size of zero
// or less selects DefaultSize; any size is rounded down to a multiple of 8
// so the squares stay pixel-aligned.
func NewDiagram(origin board.Square, mask board.Bitboard, size int) *Diagram {
	if size <= 0 {
		size = DefaultSize
	}
	return &Diagram{Origin: origin, Mask: mask, Size: size - size%8}
}

func (d *Diagram) cell() int {
	return d.Size / 8
}

// SVG renders the diagram as a complete SVG document. Ranks run top to
// bottom from 8 to 1, files left to right from a to h, the usual
// white-at-the-bottom orientation.
func (d *Diagram) SVG() []byte {
	var buf bytes.Buffer
	cell := d.cell()
	edge := cell * 8

	canvas := svg.New(&buf)
	canvas.Start(edge, edge)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			x := file * cell
			y := (7 - rank) * cell

			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Square(x, y, cell, fill)

			if d.Mask.IsSet(sq) {
				canvas.Square(x, y, cell, attackFill)
			}
			if sq == d.Origin {
				canvas.Circle(x+cell/2, y+cell/2, cell/4, originFill)
			}
		}
	}
	canvas.End()
	return buf.Bytes()
}

// WriteSVG writes the SVG document to w.
func (d *Diagram) WriteSVG(w io.Writer) error {
	_, err := w.Write(d.SVG())
	return err
}

// PNG rasterizes the SVG form of the diagram into an RGBA image.
func (d *Diagram) PNG() (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(d.SVG()))
	if err != nil {
		return nil, fmt.Errorf("parse diagram svg: %w", err)
	}

	edge := d.cell() * 8
	icon.SetTarget(0, 0, float64(edge), float64(edge))

	rgba := image.NewRGBA(image.Rect(0, 0, edge, edge))
	scanner := rasterx.NewScannerGV(edge, edge, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(edge, edge, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// WritePNG rasterizes the diagram and PNG-encodes it to w.
func (d *Diagram) WritePNG(w io.Writer) error {
	img, err := d.PNG()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Text renders the diagram as a fixed-width board: the origin square is
// marked with '*', reachable squares with 'x'.
func (d *Diagram) Text() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			switch {
			case sq == d.Origin:
				sb.WriteString("* ")
			case d.Mask.IsSet(sq):
				sb.WriteString("x ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
