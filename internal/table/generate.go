package table

import (
	"github.com/hailam/attacktables/internal/board"
)

// Generate computes the attack table for a jump piece described by its
// offset set. For every square the offsets are applied to the decoded
// (file, rank) coordinate; candidates that land off the board are discarded
// and the survivors packed into the square's mask. A square keeps its entry
// even when no candidate survives, a zero mask is a valid answer. The
// per-square computations share no state, so the result is bit-for-bit
// reproducible for a given offset set.
func Generate(offsets board.OffsetSet) *Table {
	t := &Table{}
	for sq := board.A1; sq <= board.H8; sq++ {
		var mask board.Bitboard
		for _, d := range offsets {
			if to, ok := sq.AddOffset(d); ok {
				mask = mask.Set(to)
			}
		}
		t.masks[sq] = mask
	}
	return t
}

// GenerateKind computes the attack table for a registered jump kind.
func GenerateKind(k board.Kind) *Table {
	return Generate(k.Offsets())
}

// GenerateRay computes the unobstructed ray table for one direction: per
// square, the mask of all squares reached by repeating the direction's unit
// step until the board edge. The origin is never part of its own ray.
func GenerateRay(d board.Direction) *Table {
	t := &Table{}
	step := d.Delta()
	for sq := board.A1; sq <= board.H8; sq++ {
		var mask board.Bitboard
		from := sq
		for {
			to, ok := from.AddOffset(step)
			if !ok {
				break
			}
			mask = mask.Set(to)
			from = to
		}
		t.masks[sq] = mask
	}
	return t
}
