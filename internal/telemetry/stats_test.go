package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	history := []Census{
		{Generation: 0, Alive: 10},
		{Generation: 1, Alive: 20},
		{Generation: 2, Alive: 30},
	}

	s := Summarize(history)
	if s.Generations != 3 {
		t.Errorf("Generations = %d, want 3", s.Generations)
	}
	if math.Abs(s.MeanAlive-20) > 0.001 {
		t.Errorf("MeanAlive = %v, want 20", s.MeanAlive)
	}
	if math.Abs(s.StdDevAlive-10) > 0.001 {
		t.Errorf("StdDevAlive = %v, want 10", s.StdDevAlive)
	}
	if s.MinAlive != 10 || s.MaxAlive != 30 {
		t.Errorf("Min/MaxAlive = %d/%d, want 10/30", s.MinAlive, s.MaxAlive)
	}
	if s.FinalAlive != 30 {
		t.Errorf("FinalAlive = %d, want 30", s.FinalAlive)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]Census{{Generation: 0, Alive: 7}})
	if s.MeanAlive != 7 || s.StdDevAlive != 0 {
		t.Errorf("single-record summary mean/stddev = %v/%v, want 7/0", s.MeanAlive, s.StdDevAlive)
	}
}

func TestWriteCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	history := []Census{
		{Generation: 0, Alive: 5, Births: 0, Deaths: 0},
		{Generation: 1, Alive: 4, Births: 1, Deaths: 2},
	}
	if err := WriteCSV(dir, history); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "census.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + 2 records", len(lines))
	}
	if lines[0] != "generation,alive,births,deaths" {
		t.Errorf("csv header = %q", lines[0])
	}
	if lines[2] != "1,4,1,2" {
		t.Errorf("second record = %q, want \"1,4,1,2\"", lines[2])
	}
}

func TestWriteCSVDisabled(t *testing.T) {
	if err := WriteCSV("", []Census{{Alive: 1}}); err != nil {
		t.Fatalf("disabled output returned %v", err)
	}
}
