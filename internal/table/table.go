// Package table implements precomputed attack tables: offline generation of
// per-square reachability masks, their dense binary serialization, and the
// strict loader the engine runs once at startup. A loaded table answers
// "which squares can this piece kind reach from square s" with a single
// array load.
package table

import (
	"fmt"

	"github.com/hailam/attacktables/internal/board"
)

// Table holds one attack mask per square for a single piece kind. It is
// immutable after construction and safe for unlimited concurrent readers.
type Table struct {
	masks [board.NumSquares]board.Bitboard
}

// AttacksFrom returns the mask of squares reachable from sq. Calling it with
// an out-of-range square is a caller contract violation and panics; it never
// answers with a silent zero mask.
func (t *Table) AttacksFrom(sq board.Square) board.Bitboard {
	if !sq.IsValid() {
		panic(fmt.Sprintf("table: square %d out of range", sq))
	}
	return t.masks[sq]
}

// Equal reports whether two tables hold identical masks for all 64 squares.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.masks == o.masks
}
