package board

import "fmt"

// Delta is a jump vector relative to an origin square, in files and ranks.
type Delta struct {
	File int
	Rank int
}

// OffsetSet is the fixed, ordered set of jump vectors defining a non-sliding
// piece kind's reachable squares. The sets below are configuration constants;
// they are never user input.
type OffsetSet []Delta

var (
	kingOffsets = OffsetSet{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	knightOffsets = OffsetSet{
		{-1, -2}, {1, -2}, {-2, -1}, {2, -1},
		{-2, 1}, {2, 1}, {-1, 2}, {1, 2},
	}

	// Pawn sets hold the single forward step plus both capture vectors.
	// Double-step and en passant are occupancy- and rank-dependent and are
	// not representable as fixed jump vectors.
	whitePawnOffsets = OffsetSet{{-1, 1}, {0, 1}, {1, 1}}
	blackPawnOffsets = OffsetSet{{-1, -1}, {0, -1}, {1, -1}}
)

// kindOffsets is the registry mapping each table kind to its offset set.
var kindOffsets = [numKinds]OffsetSet{
	King:      kingOffsets,
	Knight:    knightOffsets,
	WhitePawn: whitePawnOffsets,
	BlackPawn: blackPawnOffsets,
}

// Offsets returns the kind's offset set.
func (k Kind) Offsets() OffsetSet {
	return kindOffsets[k]
}

// Direction is one of the eight compass directions a slider ray can take.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	numDirections
)

var directionDeltas = [numDirections]Delta{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

// Delta returns the direction's unit step vector.
func (d Direction) Delta() Delta {
	return directionDeltas[d]
}

// Increasing reports whether stepping in this direction increases the square
// index. It decides whether the nearest blocker on a ray is found with an
// LSB or an MSB scan.
func (d Direction) Increasing() bool {
	dd := directionDeltas[d]
	return dd.File+8*dd.Rank > 0
}

// String returns the direction identifier used in ray table file names.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
