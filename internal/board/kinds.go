package board

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind identifies a non-sliding table kind: a piece whose reachable squares
// are fully determined by the origin square alone. Pawn kinds are separate
// per color because their offset sets point in opposite directions.
type Kind uint8

const (
	King Kind = iota
	Knight
	WhitePawn
	BlackPawn
	numKinds
)

// Kinds lists every non-sliding table kind in generation order.
var Kinds = [numKinds]Kind{King, Knight, WhitePawn, BlackPawn}

// String returns the kind identifier used in table file names.
func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Knight:
		return "knight"
	case WhitePawn:
		return "wpawn"
	case BlackPawn:
		return "bpawn"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses a kind identifier as accepted on the command line.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// PawnKind returns the pawn table kind for the given color.
func PawnKind(c Color) Kind {
	if c == White {
		return WhitePawn
	}
	return BlackPawn
}

// Slider identifies a sliding piece whose reachability depends on occupancy
// along its rays. The queen is the union of both sliders and has no table
// of its own.
type Slider uint8

const (
	Rook Slider = iota
	Bishop
	numSliders
)

// Sliders lists every slider in generation order.
var Sliders = [numSliders]Slider{Rook, Bishop}

// String returns the slider identifier used in table file names.
func (s Slider) String() string {
	if s == Rook {
		return "rook"
	}
	return "bishop"
}

// ParseSlider parses a slider identifier as accepted on the command line.
func ParseSlider(s string) (Slider, error) {
	for _, sl := range Sliders {
		if s == sl.String() {
			return sl, nil
		}
	}
	return 0, fmt.Errorf("unknown slider %q", s)
}

// Directions returns the four ray directions of the slider.
func (s Slider) Directions() [4]Direction {
	if s == Rook {
		return [4]Direction{North, East, South, West}
	}
	return [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}
