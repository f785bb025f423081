// life-bench runs the engine headless for a fixed number of generations and
// reports per-generation census telemetry.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"conway/internal/config"
	"conway/internal/life"
	"conway/internal/telemetry"
)

func main() {
	cfg := config.Default()
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	generations := flag.Int("generations", 1000, "generations to simulate")
	timeSeed := flag.Bool("time-seed", false, "seed from wall clock instead of the configured seed")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		// Command-line flags take precedence over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	seed := cfg.Board.Seed
	if *timeSeed {
		seed = time.Now().UnixNano()
	}

	eng, err := life.New(life.Config{
		Size:    cfg.Board.Size,
		Seed:    seed,
		Workers: cfg.Board.Workers,
	})
	if err != nil {
		slog.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	eng.Randomize()
	eng.ToggleMode()

	collector := telemetry.NewCollector()
	collector.Record(0, eng.Cells())

	start := time.Now()
	for i := 0; i < *generations; i++ {
		if !eng.Step() {
			break
		}
		collector.Record(eng.Generation(), eng.Cells())
	}
	elapsed := time.Since(start)

	summary := telemetry.Summarize(collector.History())
	slog.Info("run complete",
		"size", cfg.Board.Size,
		"seed", seed,
		"generations", eng.Generation(),
		"elapsed", elapsed.Round(time.Microsecond).String(),
		"mean_alive", summary.MeanAlive,
		"stddev_alive", summary.StdDevAlive,
		"min_alive", summary.MinAlive,
		"max_alive", summary.MaxAlive,
		"final_alive", summary.FinalAlive,
	)

	if err := telemetry.WriteCSV(cfg.Telemetry.OutputDir, collector.History()); err != nil {
		slog.Error("failed to write telemetry", "error", err)
		os.Exit(1)
	}
}
