// Package telemetry collects per-generation population data from the
// simulation and writes it to structured output.
package telemetry

// Census is one generation's population record.
type Census struct {
	Generation int `csv:"generation"`
	Alive      int `csv:"alive"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
}

// Collector accumulates census records across a run. Births and deaths are
// derived by diffing each snapshot against the previous one.
type Collector struct {
	prev    []uint8
	history []Census
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record computes the census for the given 0/1 cell snapshot and appends it
// to the history.
func (c *Collector) Record(generation int, cells []uint8) Census {
	rec := Census{Generation: generation}
	for i, v := range cells {
		if v != 0 {
			rec.Alive++
		}
		if c.prev != nil && i < len(c.prev) {
			switch {
			case v != 0 && c.prev[i] == 0:
				rec.Births++
			case v == 0 && c.prev[i] != 0:
				rec.Deaths++
			}
		}
	}

	if c.prev == nil || len(c.prev) != len(cells) {
		c.prev = make([]uint8, len(cells))
	}
	copy(c.prev, cells)

	c.history = append(c.history, rec)
	return rec
}

// History returns all recorded censuses in order.
func (c *Collector) History() []Census { return c.history }
