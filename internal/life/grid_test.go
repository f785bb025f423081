package life

import (
	"errors"
	"testing"
)

func TestStageThenCommit(t *testing.T) {
	b, _ := NewBoard(4)
	g := NewGrid(b)

	g.Stage(3, true)
	g.Stage(7, false)

	// Staging must not be visible before commit.
	if alive, _ := g.Read(3); alive {
		t.Fatal("staged value visible before commit")
	}

	g.Commit()
	if alive, _ := g.Read(3); !alive {
		t.Fatal("cell 3 not alive after commit")
	}
	if alive, _ := g.Read(7); alive {
		t.Fatal("cell 7 alive after staging dead")
	}
}

func TestCommitLeavesUnstagedCellsUntouched(t *testing.T) {
	b, _ := NewBoard(4)
	g := NewGrid(b)

	g.SetCurrent(5, true)
	g.Stage(0, true)
	g.Commit()

	if alive, _ := g.Read(5); !alive {
		t.Fatal("unstaged cell lost its state across commit")
	}
}

func TestCommitResetsStagedSlots(t *testing.T) {
	b, _ := NewBoard(4)
	g := NewGrid(b)

	g.Stage(2, true)
	g.Commit()
	g.SetCurrent(2, false)

	// A second commit must not re-apply the consumed staged value.
	g.Commit()
	if alive, _ := g.Read(2); alive {
		t.Fatal("staged value applied twice")
	}
}

func TestReadOutOfRange(t *testing.T) {
	b, _ := NewBoard(4)
	g := NewGrid(b)

	for _, idx := range []int{-1, 16} {
		if _, err := g.Read(idx); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Read(%d) err = %v, want ErrInvalidIndex", idx, err)
		}
	}
}
