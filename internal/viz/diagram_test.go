package viz

import (
	"bytes"
	"encoding/xml"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/hailam/attacktables/internal/board"
	"github.com/hailam/attacktables/internal/table"
)

func kingDiagram(size int) *Diagram {
	king := table.GenerateKind(board.King)
	return NewDiagram(board.D4, king.AttacksFrom(board.D4), size)
}

func TestDiagramSVG(t *testing.T) {
	data := kingDiagram(400).SVG()
	if len(data) == 0 {
		t.Fatal("SVG() returned no output")
	}

	// The document must be well-formed XML.
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("SVG is not well-formed XML: %v", err)
		}
	}

	s := string(data)
	if !strings.Contains(s, "<svg") {
		t.Error("output lacks an <svg> element")
	}
	// 64 base squares plus 8 highlight overlays for the king on d4.
	if got := strings.Count(s, "<rect"); got != 64+8 {
		t.Errorf("SVG holds %d rects, want 72", got)
	}
	// One origin marker.
	if got := strings.Count(s, "<circle"); got != 1 {
		t.Errorf("SVG holds %d circles, want 1", got)
	}
}

func TestDiagramPNG(t *testing.T) {
	d := kingDiagram(320)

	var buf bytes.Buffer
	if err := d.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("PNG output does not decode: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 320 {
		t.Fatalf("PNG is %v, want 320x320", img.Bounds())
	}

	cell := 320 / 8

	// Center of d5, a highlighted square: the green overlay must dominate.
	x := 3*cell + cell/2
	y := 3*cell + cell/2
	r, g, _, _ := img.At(x, y).RGBA()
	if g <= r {
		t.Errorf("highlighted square pixel at (%d,%d) is not green: r=%d g=%d", x, y, r, g)
	}

	// Center of d4, the origin marker: red dominates.
	y = 4*cell + cell/2
	r, g, _, _ = img.At(x, y).RGBA()
	if r <= g {
		t.Errorf("origin marker pixel at (%d,%d) is not red: r=%d g=%d", x, y, r, g)
	}
}

func TestDiagramSizeRounding(t *testing.T) {
	d := NewDiagram(board.A1, board.Empty, 0)
	if d.Size != DefaultSize {
		t.Errorf("zero size selects %d, want %d", d.Size, DefaultSize)
	}

	d = NewDiagram(board.A1, board.Empty, 405)
	if d.Size != 400 {
		t.Errorf("size 405 rounds to %d, want 400", d.Size)
	}
}

func TestDiagramText(t *testing.T) {
	got := kingDiagram(0).Text()

	if strings.Count(got, "*") != 1 {
		t.Error("text board should mark exactly one origin")
	}
	if strings.Count(got, "x") != 8 {
		t.Errorf("text board marks %d reachable squares, want 8", strings.Count(got, "x"))
	}
	if !strings.HasSuffix(got, "  a b c d e f g h\n") {
		t.Error("text board should end with the file legend")
	}

	// Rank 8 renders first and holds nothing for a king on d4.
	first := strings.SplitN(got, "\n", 2)[0]
	if strings.ContainsAny(first, "*x") {
		t.Errorf("rank 8 line %q should be empty for a king on d4", first)
	}
}
