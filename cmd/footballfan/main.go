// Command footballfan is the operational CLI: it loads the match database
// from the competitions API and publishes a team's fixtures to Google
// Calendar.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"football-fan-service/internal/calendar/google"
	"football-fan-service/internal/config"
	"football-fan-service/internal/jobs"
	"football-fan-service/internal/logging"
	"football-fan-service/internal/metrics"
	"football-fan-service/internal/providers/footballdata"
	"football-fan-service/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "footballfan",
	})

	switch os.Args[1] {
	case "load-database":
		runLoadDatabase(ctx, cfg, logger, os.Args[2:])
	case "add-to-calendar":
		runAddToCalendar(ctx, cfg, logger, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: footballfan <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  load-database    fetch competitions and matches into the database")
	fmt.Fprintln(os.Stderr, "  add-to-calendar  create calendar events for a team's stored matches")
}

func runLoadDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) {
	fs := flag.NewFlagSet("load-database", flag.ExitOnError)
	dbDir := fs.String("db", cfg.DatabaseDir, "database directory")
	now := time.Now().UTC()
	month := fs.Int("month", int(now.Month()), "month to load (1-12)")
	year := fs.Int("year", now.Year(), "year to load")
	fs.Parse(args)

	fsStore, err := store.NewFSStore(*dbDir, logger)
	if err != nil {
		fatal("open database: %v", err)
	}

	provider := footballdata.NewClient(footballdata.Config{
		BaseURL: cfg.FootballData.BaseURL,
		APIKey:  cfg.FootballData.APIKey,
	})

	job := jobs.NewLoadJob(provider, fsStore, cfg.Competitions, logger)
	if err := job.RunMonth(ctx, *month, *year); err != nil {
		fatal("load database: %v", err)
	}
}

func runAddToCalendar(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) {
	fs := flag.NewFlagSet("add-to-calendar", flag.ExitOnError)
	team := fs.String("team", "", "team name to publish (required)")
	dbDir := fs.String("db", cfg.DatabaseDir, "database directory")
	calendarID := fs.String("calendar", cfg.Calendar.CalendarID, "target calendar id")
	fs.Parse(args)

	if *team == "" {
		fmt.Fprintln(os.Stderr, "add-to-calendar: -team is required")
		fs.Usage()
		os.Exit(2)
	}

	fsStore, err := store.NewFSStore(*dbDir, logger)
	if err != nil {
		fatal("open database: %v", err)
	}

	sink := google.NewClient(google.Config{
		UseADC:             cfg.Calendar.UseADC,
		ServiceAccountPath: cfg.Calendar.ServiceAccountPath,
		CredentialsPath:    cfg.Calendar.CredentialsPath,
		TokenPath:          cfg.Calendar.TokenPath,
		APIKey:             cfg.Calendar.APIKey,
		Logger:             logger,
	})

	recorder, metricsStop := telemetryRecorder(ctx, cfg, logger)

	job := jobs.NewCalendarJob(fsStore, sink, recorder, logger)
	result := job.Run(ctx, *team, *calendarID)

	if metricsStop != nil {
		flushCtx, cancelFlush := context.WithTimeout(context.Background(), 10*time.Second)
		if err := metricsStop(flushCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
		cancelFlush()
	}

	// The result is the contract: structured failures are printed, not
	// turned into a non-zero exit.
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fatal("render result: %v", err)
	}
	fmt.Println(string(out))
}

// telemetryRecorder mirrors the server's metrics wiring so command runs feed
// the same instruments. The Prometheus handler is discarded; OTLP export is
// the path that matters for a short-lived command.
func telemetryRecorder(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	rec, _, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil
	}
	return rec, shutdown
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
