package telemetry

import "gonum.org/v1/gonum/stat"

// Summary aggregates a run's population history.
type Summary struct {
	Generations int
	MeanAlive   float64
	StdDevAlive float64
	MinAlive    int
	MaxAlive    int
	FinalAlive  int
}

// Summarize reduces the history to run-level statistics. An empty history
// yields a zero summary.
func Summarize(history []Census) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	alive := make([]float64, len(history))
	s := Summary{
		Generations: len(history),
		MinAlive:    history[0].Alive,
		MaxAlive:    history[0].Alive,
		FinalAlive:  history[len(history)-1].Alive,
	}
	for i, rec := range history {
		alive[i] = float64(rec.Alive)
		if rec.Alive < s.MinAlive {
			s.MinAlive = rec.Alive
		}
		if rec.Alive > s.MaxAlive {
			s.MaxAlive = rec.Alive
		}
	}

	s.MeanAlive = stat.Mean(alive, nil)
	if len(alive) > 1 {
		s.StdDevAlive = stat.StdDev(alive, nil)
	}
	return s
}
