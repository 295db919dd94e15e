package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-lab/twapbridge/internal/bridge"
	"github.com/meridian-lab/twapbridge/internal/core/boundary"
	corecfg "github.com/meridian-lab/twapbridge/internal/core/config"
	"github.com/meridian-lab/twapbridge/internal/fixture"
)

func main() {
	configPath := flag.String("config", "twapbridge.yaml", "Path to configuration file")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	})).With("run_id", uuid.NewString())
	slog.SetDefault(logger)
	logger.Debug("Loaded config", "config", cfg)

	// 3. Load the division set
	set, err := fixture.Load(cfg.Input.Path)
	if err != nil {
		logger.Error("Failed to load division set", "path", cfg.Input.Path, "error", err)
		os.Exit(1)
	}

	blockTime := cfg.Average.BlockTime
	if blockTime == 0 {
		blockTime = uint64(time.Now().UnixNano())
	}

	logger.Info("Computing compressed moving average",
		"divisions", len(set.Divisions),
		"has_removed", set.LatestRemoved != nil,
		"division_size", cfg.Average.DivisionSize,
		"window_size", cfg.Average.WindowSize,
		"block_time", blockTime,
	)

	// 4. Run the bridge call
	svc := bridge.New(logger)

	if cfg.Average.PrintDivisions {
		for _, d := range set.Divisions {
			res := svc.PrintDivision(d)
			res.Release()
		}
	}

	res := svc.CompressedMovingAverage(
		boundary.FromPtr(set.LatestRemoved),
		boundary.NewSequence(set.Divisions),
		cfg.Average.DivisionSize,
		cfg.Average.WindowSize,
		blockTime,
	)
	defer res.Release()

	if msg, failed := res.ErrMessage(); failed {
		logger.Error("Moving average failed", "error", msg)
		os.Exit(1)
	}

	average, _ := res.Value()
	fmt.Println(average)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
