package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fieldline/spadl/internal/adapters/export"
	service "github.com/fieldline/spadl/internal/app"
	"github.com/fieldline/spadl/internal/config"
	"github.com/fieldline/spadl/internal/domain/dribble"
	"github.com/fieldline/spadl/pkg/logger"

	// Register bundled provider integrations via init().
	_ "github.com/fieldline/spadl/internal/adapters/provider/jsonfile"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("spadl: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	// Initialize logging
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flag.Usage = usage
	flag.Parse()
	sources := flag.Args()
	if len(sources) == 0 {
		usage()
		return errors.New("no feed source given")
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Err(err))
		_ = logger.SetLevelString("info")
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithProvider(cfg.Provider),
		service.WithHomeTeamID(cfg.HomeTeamID),
		service.WithFormat(format),
		service.WithBatchWorkers(cfg.BatchWorkers),
		service.WithDribbleOptions(
			dribble.WithMinLength(cfg.MinDribbleLength),
			dribble.WithMaxLength(cfg.MaxDribbleLength),
			dribble.WithMaxDuration(time.Duration(cfg.MaxDribbleDurationSec*float64(time.Second))),
		),
	)

	if len(sources) == 1 {
		return svc.ConvertToFile(ctx, sources[0], cfg.Output)
	}
	return convertAll(ctx, log, svc, sources, cfg.Output, format)
}

// convertAll converts many feeds concurrently and writes one table
// per source into the output directory.
func convertAll(ctx context.Context, log logger.Logger, svc *service.Service, sources []string, outDir string, format export.Format) error {
	if outDir == "" || outDir == "-" {
		return errors.New("batch conversion needs an output directory; set SPADL_OUTPUT")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	results, err := svc.ConvertBatch(ctx, sources)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Error(ctx, "feed failed", logger.String("source", res.Source), logger.Err(res.Err))
			continue
		}
		dest := filepath.Join(outDir, tableName(res.Source, format))
		if err := writeTable(dest, format, res); err != nil {
			failed++
			log.Error(ctx, "write failed", logger.String("dest", dest), logger.Err(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d feeds failed", failed, len(results))
	}
	return nil
}

func writeTable(dest string, format export.Format, res service.BatchResult) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	if err := export.Write(f, format, res.Actions); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// tableName maps a feed path to its table file name, e.g.
// feeds/match1.json -> match1.csv.
func tableName(source string, format export.Format) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + string(format)
}

func usage() {
	os.Stderr.WriteString(`Usage: spadl [feed ...]

Converts provider match-event feeds into SPADL action tables.
Configuration comes from SPADL_* environment variables or the YAML
file named by SPADL_CONFIG. With a single feed the table goes to
SPADL_OUTPUT ("-" is stdout); with several feeds SPADL_OUTPUT names
a directory that receives one table per feed.
`)
}
