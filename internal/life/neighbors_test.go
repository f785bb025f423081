package life

import "testing"

func TestNeighborsDistinctAndInRange(t *testing.T) {
	b, _ := NewBoard(8)
	ni := NewNeighborIndex(b)
	total := b.CellCount()
	for idx := 0; idx < total; idx++ {
		ns := ni.Neighbors(idx)
		seen := map[int]bool{}
		for _, n := range ns {
			if n < 0 || n >= total {
				t.Fatalf("cell %d has neighbor %d outside [0,%d)", idx, n, total)
			}
			if seen[n] {
				t.Fatalf("cell %d has duplicate neighbor %d", idx, n)
			}
			seen[n] = true
		}
	}
}

func TestNeighborOrderInterior(t *testing.T) {
	b, _ := NewBoard(8)
	ni := NewNeighborIndex(b)

	at := func(x, y int) int {
		idx, err := b.CoordToIdx(x, y)
		if err != nil {
			t.Fatalf("CoordToIdx(%d,%d): %v", x, y, err)
		}
		return idx
	}

	want := [8]int{
		at(0, 0), at(1, 0), at(2, 0),
		at(0, 1), at(2, 1),
		at(0, 2), at(1, 2), at(2, 2),
	}
	if got := ni.Neighbors(at(1, 1)); got != want {
		t.Fatalf("neighbors of (1,1) = %v, want %v", got, want)
	}
}

func TestToroidalWraparound(t *testing.T) {
	b, _ := NewBoard(8)
	ni := NewNeighborIndex(b)

	at := func(x, y int) int {
		idx, err := b.CoordToIdx(x, y)
		if err != nil {
			t.Fatalf("CoordToIdx(%d,%d): %v", x, y, err)
		}
		return idx
	}

	// Left-edge cell: the x-1 column wraps to x=7.
	want := [8]int{
		at(7, 0), at(0, 0), at(1, 0),
		at(7, 1), at(1, 1),
		at(7, 2), at(0, 2), at(1, 2),
	}
	if got := ni.Neighbors(at(0, 1)); got != want {
		t.Fatalf("neighbors of (0,1) = %v, want %v", got, want)
	}

	// Corner cell: both axes wrap.
	want = [8]int{
		at(7, 7), at(0, 7), at(1, 7),
		at(7, 0), at(1, 0),
		at(7, 1), at(0, 1), at(1, 1),
	}
	if got := ni.Neighbors(at(0, 0)); got != want {
		t.Fatalf("neighbors of (0,0) = %v, want %v", got, want)
	}
}
