package table

import (
	"fmt"
	"path/filepath"

	"github.com/hailam/attacktables/internal/board"
)

// RaySet holds the four direction tables of one slider and answers
// occupancy-dependent attack queries. Each ray table uses the same 64-record
// format as the jump tables, so the set stays square-indexed at its
// outermost level; occupancy enters only at query time.
type RaySet struct {
	slider board.Slider
	dirs   [4]board.Direction
	rays   [4]*Table
}

// GenerateSlider computes the four ray tables for a slider.
func GenerateSlider(s board.Slider) *RaySet {
	rs := &RaySet{slider: s, dirs: s.Directions()}
	for i, d := range rs.dirs {
		rs.rays[i] = GenerateRay(d)
	}
	return rs
}

// LoadSlider loads a slider's four ray tables from dir under their standard
// names.
func LoadSlider(dir string, s board.Slider) (*RaySet, error) {
	rs := &RaySet{slider: s, dirs: s.Directions()}
	for i, d := range rs.dirs {
		t, err := LoadFile(filepath.Join(dir, RayFileName(s, d)))
		if err != nil {
			return nil, err
		}
		rs.rays[i] = t
	}
	return rs, nil
}

// WriteDir writes the four ray tables into dir under their standard names,
// each atomically.
func (rs *RaySet) WriteDir(dir string) error {
	for i, d := range rs.dirs {
		if err := rs.rays[i].WriteFile(filepath.Join(dir, RayFileName(rs.slider, d))); err != nil {
			return err
		}
	}
	return nil
}

// AttacksFrom returns the squares the slider attacks from sq under the given
// occupancy. Each precomputed ray is clipped at its first occupied square:
// the blocker itself stays in the mask (it may be captured), everything
// beyond it is masked out using the blocker's own ray in the same direction.
func (rs *RaySet) AttacksFrom(sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.IsValid() {
		panic(fmt.Sprintf("table: square %d out of range", sq))
	}
	var attacks board.Bitboard
	for i, d := range rs.dirs {
		ray := rs.rays[i].masks[sq]
		if blockers := ray & occ; blockers != 0 {
			first := blockers.LSB()
			if !d.Increasing() {
				first = blockers.MSB()
			}
			ray &^= rs.rays[i].masks[first]
		}
		attacks |= ray
	}
	return attacks
}

// Equal reports whether two ray sets describe the same slider with
// identical ray tables.
func (rs *RaySet) Equal(o *RaySet) bool {
	if rs == nil || o == nil {
		return rs == o
	}
	if rs.slider != o.slider {
		return false
	}
	for i := range rs.rays {
		if !rs.rays[i].Equal(o.rays[i]) {
			return false
		}
	}
	return true
}
