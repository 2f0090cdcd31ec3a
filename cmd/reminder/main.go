package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/medsystem/medsystem/internal/app"
	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/service"
	medsystem "github.com/medsystem/medsystem/sdk/go"
)

var (
	serverURL string
	runNow    bool
)

var rootCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Send appointment reminders to today's patients",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one reminder batch and print the report",
	RunE:  runOnce,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the reminder batch every day at reminder.schedule_at",
	RunE:  runSchedule,
}

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Ask a running server to send today's reminders",
	RunE:  runTrigger,
}

func init() {
	triggerCmd.Flags().StringVar(&serverURL, "url", "http://localhost:3000", "base URL of the medsystem server")
	scheduleCmd.Flags().BoolVar(&runNow, "now", false, "also run a batch immediately on start")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(triggerCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type env struct {
	cfg *config.Config
	log *logger.Logger
	db  *database.Postgres
	svc *service.ReminderService
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	svc, err := app.NewReminderService(ctx, cfg, db, log, nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &env{cfg: cfg, log: log, db: db, svc: svc}, nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.db.Close()

	ctx, cancel := withRunTimeout(cmd.Context(), e.cfg.Reminder.RunTimeout)
	defer cancel()

	report, err := e.svc.SendDailyReminders(ctx)
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.db.Close()

	hour, minute, err := e.cfg.Reminder.ScheduleClock()
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(e.cfg.Reminder.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}

	log := e.log.WithComponent("scheduler")
	batch := func() {
		runCtx, cancel := withRunTimeout(context.WithoutCancel(ctx), e.cfg.Reminder.RunTimeout)
		defer cancel()
		if _, err := e.svc.SendDailyReminders(runCtx); err != nil {
			log.Error().Err(err).Msg("scheduled reminder run failed")
		}
	}

	if runNow {
		batch()
	}

	for {
		next := nextRun(time.Now(), hour, minute, loc)
		log.Info().Time("next_run", next).Msg("waiting for next reminder run")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info().Msg("scheduler stopped")
			return nil
		case <-timer.C:
			batch()
		}
	}
}

// nextRun returns the first hour:minute in loc strictly after now.
func nextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}

func runTrigger(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := medsystem.NewClient(medsystem.Config{
		BaseURL:    serverURL,
		CronSecret: cfg.Cron.Secret,
	})

	report, err := client.TriggerReminders(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

func withRunTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
