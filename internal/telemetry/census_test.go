package telemetry

import "testing"

func TestRecordCountsBirthsAndDeaths(t *testing.T) {
	c := NewCollector()

	first := c.Record(0, []uint8{1, 0, 1, 0})
	if first.Alive != 2 {
		t.Fatalf("first census alive = %d, want 2", first.Alive)
	}
	// No previous generation to diff against.
	if first.Births != 0 || first.Deaths != 0 {
		t.Fatalf("first census births/deaths = %d/%d, want 0/0", first.Births, first.Deaths)
	}

	second := c.Record(1, []uint8{0, 1, 1, 0})
	if second.Alive != 2 {
		t.Fatalf("second census alive = %d, want 2", second.Alive)
	}
	if second.Births != 1 {
		t.Fatalf("second census births = %d, want 1", second.Births)
	}
	if second.Deaths != 1 {
		t.Fatalf("second census deaths = %d, want 1", second.Deaths)
	}

	if len(c.History()) != 2 {
		t.Fatalf("history length = %d, want 2", len(c.History()))
	}
	if c.History()[1].Generation != 1 {
		t.Fatalf("second record generation = %d, want 1", c.History()[1].Generation)
	}
}

func TestRecordEmptyBoard(t *testing.T) {
	c := NewCollector()
	rec := c.Record(0, []uint8{0, 0, 0, 0})
	if rec.Alive != 0 || rec.Births != 0 || rec.Deaths != 0 {
		t.Fatalf("empty board census = %+v, want zeros", rec)
	}
}
