package table

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/attacktables/internal/board"
)

// TestSetRoundTrip writes a freshly generated set to disk and loads it
// back: the two must be equal, and the directory must hold exactly the
// twelve standard files.
func TestSetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	gen := GenerateSet()
	if err := gen.WriteDir(dir); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{
		"bishop_northeast_lookup.bin",
		"bishop_northwest_lookup.bin",
		"bishop_southeast_lookup.bin",
		"bishop_southwest_lookup.bin",
		"bpawn_lookup.bin",
		"king_lookup.bin",
		"knight_lookup.bin",
		"rook_east_lookup.bin",
		"rook_north_lookup.bin",
		"rook_south_lookup.bin",
		"rook_west_lookup.bin",
		"wpawn_lookup.bin",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("table files mismatch (-want +got):\n%s", diff)
	}

	loaded, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if !loaded.Equal(gen) {
		t.Error("set changed across a write/load round trip")
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateSet().WriteDir(dir); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, RayFileName(board.Rook, board.South))); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir should fail when a ray table is missing")
	}
}

func TestSetQueries(t *testing.T) {
	s := GenerateSet()

	if got := s.KingAttacks(board.E1).PopCount(); got != 5 {
		t.Errorf("king on e1 reaches %d squares, want 5", got)
	}
	if got := s.KnightAttacks(board.B1); got.PopCount() != 3 {
		t.Errorf("knight on b1 reaches %d squares, want 3", got.PopCount())
	}

	wantWhite := []board.Square{board.D3, board.E3, board.F3}
	if diff := cmp.Diff(wantWhite, s.PawnReach(board.White, board.E2).Squares()); diff != "" {
		t.Errorf("white pawn reach from e2 (-want +got):\n%s", diff)
	}
	wantBlack := []board.Square{board.D6, board.E6, board.F6}
	if diff := cmp.Diff(wantBlack, s.PawnReach(board.Black, board.E7).Squares()); diff != "" {
		t.Errorf("black pawn reach from e7 (-want +got):\n%s", diff)
	}

	occ := board.SquareBB(board.E6) | board.SquareBB(board.C4)
	rook := s.RookAttacks(board.E4, occ)
	bishop := s.BishopAttacks(board.E4, occ)
	queen := s.QueenAttacks(board.E4, occ)
	if queen != rook|bishop {
		t.Error("queen attacks must be the union of rook and bishop attacks")
	}

	// On an empty board a corner queen sees 14 rook squares plus the
	// 7-square diagonal.
	if got := s.QueenAttacks(board.A1, board.Empty).PopCount(); got != 21 {
		t.Errorf("queen from a1 reaches %d squares, want 21", got)
	}
}

// TestConcurrentReads hammers one loaded set from many goroutines at once.
// The tables are written once before any reader starts, so the race
// detector stays quiet and every reader sees the same masks.
func TestConcurrentReads(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateSet().WriteDir(dir); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}
	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	wantKing := make([]board.Bitboard, board.NumSquares)
	wantRook := make([]board.Bitboard, board.NumSquares)
	occ := board.Bitboard(0x0000001818000000)
	for sq := board.A1; sq <= board.H8; sq++ {
		wantKing[sq] = s.KingAttacks(sq)
		wantRook[sq] = s.RookAttacks(sq, occ)
	}

	const readers = 16
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 100; round++ {
				for sq := board.A1; sq <= board.H8; sq++ {
					if got := s.KingAttacks(sq); got != wantKing[sq] {
						errs <- fmt.Errorf("king mask for %v changed under concurrency", sq)
						return
					}
					if got := s.RookAttacks(sq, occ); got != wantRook[sq] {
						errs <- fmt.Errorf("rook mask for %v changed under concurrency", sq)
						return
					}
					s.KnightAttacks(sq)
					s.PawnReach(board.White, sq)
					s.PawnReach(board.Black, sq)
					s.QueenAttacks(sq, occ)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent reader: %v", err)
	}
}
