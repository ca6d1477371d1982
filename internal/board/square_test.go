package board

import "testing"

// TestSquareLinearization verifies the square = file + rank*8 mapping both
// ways, since every table record's position depends on it.
func TestSquareLinearization(t *testing.T) {
	tests := []struct {
		sq   Square
		file int
		rank int
	}{
		{A1, 0, 0},
		{H1, 7, 0},
		{A8, 0, 7},
		{H8, 7, 7},
		{E4, 4, 3},
		{D5, 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := tc.sq.File(); got != tc.file {
				t.Errorf("File() = %d, want %d", got, tc.file)
			}
			if got := tc.sq.Rank(); got != tc.rank {
				t.Errorf("Rank() = %d, want %d", got, tc.rank)
			}
			if got := NewSquare(tc.file, tc.rank); got != tc.sq {
				t.Errorf("NewSquare(%d, %d) = %v, want %v", tc.file, tc.rank, got, tc.sq)
			}
		})
	}

	// Round-trip over the whole board.
	for sq := A1; sq <= H8; sq++ {
		if got := NewSquare(sq.File(), sq.Rank()); got != sq {
			t.Errorf("NewSquare(File(), Rank()) = %v, want %v", got, sq)
		}
	}
}

func TestAddOffset(t *testing.T) {
	tests := []struct {
		name string
		from Square
		d    Delta
		want Square
		ok   bool
	}{
		{"interior north", E4, Delta{0, 1}, E5, true},
		{"interior knight", E4, Delta{1, 2}, F6, true},
		{"west off A file", A4, Delta{-1, 0}, NoSquare, false},
		{"east off H file", H4, Delta{1, 0}, NoSquare, false},
		{"south off rank 1", E1, Delta{0, -1}, NoSquare, false},
		{"north off rank 8", E8, Delta{0, 1}, NoSquare, false},
		{"corner diagonal off", A1, Delta{-1, -1}, NoSquare, false},
		{"knight off two files", B1, Delta{-2, 1}, NoSquare, false},
		{"knight wraps nothing", H4, Delta{1, 2}, NoSquare, false},
		{"long jump stays on", A1, Delta{7, 7}, H8, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.from.AddOffset(tc.d)
			if ok != tc.ok {
				t.Fatalf("AddOffset(%v) ok = %v, want %v", tc.d, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("AddOffset(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

func TestSquareStringParse(t *testing.T) {
	if got := A1.String(); got != "a1" {
		t.Errorf("A1.String() = %q, want %q", got, "a1")
	}
	if got := H8.String(); got != "h8" {
		t.Errorf("H8.String() = %q, want %q", got, "h8")
	}

	// Every square must survive a String/Parse round trip.
	for sq := A1; sq <= H8; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", sq.String(), got, sq)
		}
	}

	bad := []string{"", "a", "i1", "a9", "a0", "11", "e2e4"}
	for _, s := range bad {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should fail", s)
		}
	}
}

func TestSquareMirror(t *testing.T) {
	tests := []struct {
		sq   Square
		want Square
	}{
		{A1, A8},
		{H1, H8},
		{E2, E7},
		{D4, D5},
	}
	for _, tc := range tests {
		if got := tc.sq.Mirror(); got != tc.want {
			t.Errorf("%v.Mirror() = %v, want %v", tc.sq, got, tc.want)
		}
	}

	// Mirroring twice is the identity and never changes the file.
	for sq := A1; sq <= H8; sq++ {
		m := sq.Mirror()
		if m.File() != sq.File() {
			t.Errorf("%v.Mirror() changed file: %v", sq, m)
		}
		if m.Mirror() != sq {
			t.Errorf("%v.Mirror().Mirror() = %v, want %v", sq, m.Mirror(), sq)
		}
	}
}

func TestSquareIsValid(t *testing.T) {
	if !A1.IsValid() || !H8.IsValid() {
		t.Error("corner squares should be valid")
	}
	if NoSquare.IsValid() {
		t.Error("NoSquare should not be valid")
	}
	if Square(200).IsValid() {
		t.Error("Square(200) should not be valid")
	}
}
