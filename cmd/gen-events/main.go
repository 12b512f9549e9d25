package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fieldline/spadl/internal/adapters/provider/jsonfile"
	"github.com/fieldline/spadl/internal/testfeed"
	"github.com/fieldline/spadl/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumEvents  = 200
	defaultGenTimeout = time.Minute
)

func main() {
	var (
		out    = flag.String("out", "feed.json", "Output file for the generated feed (\"-\" writes to stdout)")
		events = flag.Int("events", defaultNumEvents, "Number of events to generate")
		gameID = flag.String("game", "", "Game identifier (default: random)")
		home   = flag.String("home", "home", "Home team identifier")
		away   = flag.String("away", "away", "Away team identifier")
		seed   = flag.Int64("seed", 0, "RNG seed; 0 seeds from the clock")
	)
	flag.Parse()

	// Setup logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultGenTimeout)
	defer cancel()

	// Resolve the seed here so the summary can report a value that
	// reproduces the feed.
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ds, stats, err := testfeed.Generate(ctx, testfeed.Config{
		GameID:     *gameID,
		HomeTeamID: *home,
		AwayTeamID: *away,
		Events:     *events,
		Seed:       *seed,
	})
	if err != nil {
		os.Stderr.WriteString("Feed generation failed: " + err.Error() + "\n")
		return
	}

	if *out == "-" {
		err = jsonfile.Encode(os.Stdout, *ds)
	} else {
		err = jsonfile.WriteFile(*out, *ds)
	}
	if err != nil {
		os.Stderr.WriteString("Feed write failed: " + err.Error() + "\n")
		return
	}

	log.Info(ctx, "feed generated",
		logger.String("game_id", ds.Metadata.GameID),
		logger.String("out", *out),
		logger.Int("events", stats.Events),
		logger.Any("seed", *seed),
		logger.Any("by_kind", stats.ByKind),
	)
}
