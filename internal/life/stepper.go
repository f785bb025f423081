package life

import "sync"

// parallelThreshold is the minimum cell count to fan the compute phase out
// across workers. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 4096

// stepper advances the grid by exactly one generation per invocation,
// in two phases: compute stages every cell's next value against the current
// buffer, then commit applies the staged values at once. Interleaving the
// phases would let a cell see a neighbor's next generation mid-count, so
// commit never starts before compute has visited every cell.
type stepper struct {
	grid      *Grid
	neighbors *NeighborIndex
	workers   int
}

func newStepper(g *Grid, ni *NeighborIndex, workers int) *stepper {
	if workers < 1 {
		workers = 1
	}
	return &stepper{grid: g, neighbors: ni, workers: workers}
}

// step runs one full compute+commit cycle.
func (s *stepper) step() {
	s.compute()
	s.grid.Commit()
}

// compute runs phase 1 for every cell. It only reads the current buffer and
// only writes disjoint slots of the staged buffer, so chunks can run
// concurrently with no data hazard.
func (s *stepper) compute() {
	total := len(s.grid.current)
	if s.workers == 1 || total < parallelThreshold {
		s.computeRange(0, total)
		return
	}

	chunk := (total + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.computeRange(start, end)
		}(start, end)
	}
	wg.Wait()
}

func (s *stepper) computeRange(start, end int) {
	for i := start; i < end; i++ {
		count := 0
		for _, n := range s.neighbors.table[i] {
			if s.grid.alive(n) {
				count++
			}
		}
		switch count {
		case 3:
			s.grid.Stage(i, true)
		case 2:
			// Next state equals current state; commit leaves unstaged
			// cells untouched.
		default:
			s.grid.Stage(i, false)
		}
	}
}
