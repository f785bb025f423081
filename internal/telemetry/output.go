package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes the census history to census.csv under dir, creating the
// directory if needed. An empty dir disables output and returns nil.
func WriteCSV(dir string, history []Census) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "census.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&history, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
