package table

import (
	"path/filepath"

	"github.com/hailam/attacktables/internal/board"
)

// Set bundles every table a move generator needs: the four jump tables and
// the rook and bishop ray sets. It is built once, at process start or in the
// generator, and read-only afterwards.
type Set struct {
	king   *Table
	knight *Table
	pawns  [2]*Table
	rook   *RaySet
	bishop *RaySet
}

// GenerateSet computes a complete Set in-process without touching disk.
// Writing it out and loading the files back with LoadDir yields an equal Set.
func GenerateSet() *Set {
	return &Set{
		king:   GenerateKind(board.King),
		knight: GenerateKind(board.Knight),
		pawns: [2]*Table{
			board.White: GenerateKind(board.WhitePawn),
			board.Black: GenerateKind(board.BlackPawn),
		},
		rook:   GenerateSlider(board.Rook),
		bishop: GenerateSlider(board.Bishop),
	}
}

// LoadDir loads a complete Set from the twelve table files in dir: one per
// jump kind plus four rays per slider. Any missing or malformed file fails
// the whole load.
func LoadDir(dir string) (*Set, error) {
	s := &Set{}
	var err error
	if s.king, err = LoadFile(filepath.Join(dir, FileName(board.King))); err != nil {
		return nil, err
	}
	if s.knight, err = LoadFile(filepath.Join(dir, FileName(board.Knight))); err != nil {
		return nil, err
	}
	if s.pawns[board.White], err = LoadFile(filepath.Join(dir, FileName(board.WhitePawn))); err != nil {
		return nil, err
	}
	if s.pawns[board.Black], err = LoadFile(filepath.Join(dir, FileName(board.BlackPawn))); err != nil {
		return nil, err
	}
	if s.rook, err = LoadSlider(dir, board.Rook); err != nil {
		return nil, err
	}
	if s.bishop, err = LoadSlider(dir, board.Bishop); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteDir writes all twelve table files into dir.
func (s *Set) WriteDir(dir string) error {
	if err := s.king.WriteFile(filepath.Join(dir, FileName(board.King))); err != nil {
		return err
	}
	if err := s.knight.WriteFile(filepath.Join(dir, FileName(board.Knight))); err != nil {
		return err
	}
	if err := s.pawns[board.White].WriteFile(filepath.Join(dir, FileName(board.WhitePawn))); err != nil {
		return err
	}
	if err := s.pawns[board.Black].WriteFile(filepath.Join(dir, FileName(board.BlackPawn))); err != nil {
		return err
	}
	if err := s.rook.WriteDir(dir); err != nil {
		return err
	}
	return s.bishop.WriteDir(dir)
}

// KingAttacks returns the king's attack mask for a square.
func (s *Set) KingAttacks(sq board.Square) board.Bitboard {
	return s.king.AttacksFrom(sq)
}

// KnightAttacks returns the knight's attack mask for a square.
func (s *Set) KnightAttacks(sq board.Square) board.Bitboard {
	return s.knight.AttacksFrom(sq)
}

// PawnReach returns the squares a pawn of the given color can step to or
// capture on from sq. The mask covers the single forward step and both
// capture diagonals; double steps and en passant are move-legality rules,
// not reachability, and are left to the move generator.
func (s *Set) PawnReach(c board.Color, sq board.Square) board.Bitboard {
	return s.pawns[c].AttacksFrom(sq)
}

// RookAttacks returns the rook's attack mask for a square under occ.
func (s *Set) RookAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	return s.rook.AttacksFrom(sq, occ)
}

// BishopAttacks returns the bishop's attack mask for a square under occ.
func (s *Set) BishopAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	return s.bishop.AttacksFrom(sq, occ)
}

// QueenAttacks returns the queen's attack mask for a square under occ, the
// union of the rook and bishop masks.
func (s *Set) QueenAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	return s.rook.AttacksFrom(sq, occ) | s.bishop.AttacksFrom(sq, occ)
}

// Equal reports whether two sets hold identical tables throughout.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.king.Equal(o.king) &&
		s.knight.Equal(o.knight) &&
		s.pawns[board.White].Equal(o.pawns[board.White]) &&
		s.pawns[board.Black].Equal(o.pawns[board.Black]) &&
		s.rook.Equal(o.rook) &&
		s.bishop.Equal(o.bishop)
}
