// Package app implements the montepi command: load configuration, estimate π
// (or run a coverage study, or list saved runs), report, and optionally
// persist the outcome.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/montepi/coverage"
	"github.com/katalvlaran/montepi/estimator"
	"github.com/katalvlaran/montepi/internal/config"
	"github.com/katalvlaran/montepi/internal/runstore"
	"github.com/katalvlaran/montepi/internal/telemetry"
	"github.com/katalvlaran/montepi/report"
	"github.com/katalvlaran/montepi/visual"
)

const (
	serviceName = "montepi"
	tracerName  = "github.com/katalvlaran/montepi"

	// defaultStudySeed seeds a coverage study when no seed was configured,
	// so repeated studies are comparable.
	defaultStudySeed int64 = 1

	shutdownTimeout = 5 * time.Second
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// Run executes the command with args (without the program name) and returns
// the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, serviceName+": ", 0)

	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		logger.Printf("%v", err)
		return ExitUsage
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		logger.Printf("%v", err)
		return ExitUsage
	}

	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		logger.Printf("telemetry disabled: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Printf("telemetry shutdown: %v", err)
		}
	}()

	tracer := otel.Tracer(tracerName)
	switch {
	case cfg.History > 0:
		err = runHistory(ctx, tracer, cfg, format, stdout)
	case cfg.StudyRuns > 0:
		err = runStudy(ctx, tracer, cfg, format, stdout)
	default:
		err = runEstimate(ctx, tracer, cfg, format, stdout, logger)
	}
	if err != nil {
		logger.Printf("%v", err)
		return ExitRuntime
	}

	return ExitOK
}

func runEstimate(ctx context.Context, tracer trace.Tracer, cfg config.Config, format report.Format, stdout io.Writer, logger *log.Logger) (err error) {
	ctx, span := tracer.Start(ctx, "montepi.estimate", trace.WithAttributes(
		attribute.Int("montepi.samples", cfg.Samples),
		attribute.Int("montepi.dimension", cfg.Dimension),
	))
	defer endSpan(span, &err)

	var opts []estimator.Option
	if cfg.Seed != nil {
		opts = append(opts, estimator.WithSeed(*cfg.Seed))
	}
	run, err := estimator.Estimate(cfg.Samples, cfg.Dimension, opts...)
	if err != nil {
		return err
	}
	seed, _ := run.Seed()
	span.SetAttributes(attribute.Int64("montepi.seed", seed))

	rep, err := run.Summarize()
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Float64("montepi.pi", rep.Pi),
		attribute.Int("montepi.precision", rep.Precision),
	)

	if err := report.WriteReport(stdout, rep, format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Trajectory != "" {
		if err := writeTrajectoryFile(cfg.Trajectory, run); err != nil {
			return err
		}
		logger.Printf("trajectory written to %s", cfg.Trajectory)
	}

	if cfg.DBPath != "" {
		id, err := saveReport(ctx, cfg.DBPath, runstore.Record{Seed: &seed, Report: rep})
		if err != nil {
			return err
		}
		logger.Printf("run %d saved to %s", id, cfg.DBPath)
	}

	return nil
}

func runHistory(ctx context.Context, tracer trace.Tracer, cfg config.Config, format report.Format, stdout io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "montepi.history", trace.WithAttributes(
		attribute.Int("montepi.limit", cfg.History),
	))
	defer endSpan(span, &err)

	store, err := runstore.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	recs, err := store.List(ctx, cfg.History)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	span.SetAttributes(attribute.Int("montepi.runs", len(recs)))

	entries := make([]report.HistoryEntry, len(recs))
	for i, rec := range recs {
		entries[i] = report.HistoryEntry{ID: rec.ID, CreatedAt: rec.CreatedAt, Seed: rec.Seed, Report: rec.Report}
	}
	if err := report.WriteHistory(stdout, entries, format); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

func runStudy(ctx context.Context, tracer trace.Tracer, cfg config.Config, format report.Format, stdout io.Writer) (err error) {
	_, span := tracer.Start(ctx, "montepi.study", trace.WithAttributes(
		attribute.Int("montepi.runs", cfg.StudyRuns),
		attribute.Int("montepi.samples", cfg.Samples),
		attribute.Int("montepi.dimension", cfg.Dimension),
	))
	defer endSpan(span, &err)

	seed := defaultStudySeed
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	res, err := coverage.Study(cfg.StudyRuns, cfg.Samples, cfg.Dimension, seed)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Float64("montepi.coverage_rate", res.Rate))

	if err := report.WriteStudy(stdout, res, format); err != nil {
		return fmt.Errorf("write study: %w", err)
	}
	return nil
}

// writeTrajectoryFile writes the animation frames of run as JSON Lines.
// Runs too short to animate fall back to every prefix.
func writeTrajectoryFile(path string, run *estimator.Run) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trajectory: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close trajectory: %w", cerr)
		}
	}()

	frames := visual.Frames(run.Len())
	if len(frames) == 0 {
		frames = nil
	}
	if err := report.WriteTrajectory(f, run, frames); err != nil {
		return fmt.Errorf("write trajectory: %w", err)
	}
	return nil
}

func saveReport(ctx context.Context, path string, rec runstore.Record) (int64, error) {
	store, err := runstore.Open(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	id, err := store.Save(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

func endSpan(span trace.Span, errp *error) {
	if *errp != nil {
		span.RecordError(*errp)
		span.SetStatus(codes.Error, (*errp).Error())
	}
	span.End()
}
