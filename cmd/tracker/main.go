package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/config"
	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/tracker"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags|log.Lshortfile)
	if err := run(ctx, cfg, tracker.DefaultPackages(), os.Stdout, logger); err != nil {
		stop()
		os.Exit(1)
	}
}

// run processes packages and reports failures through logger.
func run(ctx context.Context, cfg config.Config, packages []tracker.Package, out io.Writer, logger *log.Logger) error {
	runner := tracker.NewRunner(out,
		tracker.WithLogger(logger),
		tracker.WithFormat(cfg.OutputFormat),
	)

	if err := runner.Run(ctx, packages); err != nil {
		logger.Printf("tracker run %s failed: %v", runner.RunID(), err)
		return err
	}
	observability.RecordRunCompleted(time.Now().UTC())

	if cfg.LogMetrics {
		snapshot, err := observability.Snapshot(prometheus.DefaultGatherer, "fittracker_")
		if err != nil {
			logger.Printf("metrics snapshot failed: %v", err)
			return nil
		}
		for _, key := range observability.SortedKeys(snapshot) {
			logger.Printf("metric %s = %g", key, snapshot[key])
		}
	}
	return nil
}
