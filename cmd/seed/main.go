package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/logger"
)

var opts seedOptions

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the clinic database with demo patients, doctors and today's appointments",
	RunE:  runSeed,
}

func init() {
	rootCmd.Flags().IntVar(&opts.Doctors, "doctors", 5, "number of doctors")
	rootCmd.Flags().IntVar(&opts.Patients, "patients", 40, "number of patients")
	rootCmd.Flags().IntVar(&opts.Appointments, "appointments", 20, "appointments to book for today")
	rootCmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed, 0 for a random run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, "text")

	loc, err := time.LoadLocation(cfg.Reminder.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	data := generate(opts, time.Now().In(loc))

	log.Info().
		Int("doctors", len(data.Doctors)).
		Int("patients", len(data.Patients)).
		Int("appointments", len(data.Appointments)).
		Msg("seeding")

	if err := insert(ctx, db, data); err != nil {
		return err
	}

	log.Info().Msg("seed complete")
	return nil
}

func insert(ctx context.Context, db *database.Postgres, data *dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	doctorIDs := make([]int64, len(data.Doctors))
	for i, d := range data.Doctors {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO doctors (first_name, last_name, specialization, email) VALUES ($1, $2, $3, $4) RETURNING id`,
			d.FirstName, d.LastName, d.Specialization, d.Email,
		).Scan(&doctorIDs[i])
		if err != nil {
			return fmt.Errorf("failed to insert doctor: %w", err)
		}
	}

	patientIDs := make([]int64, len(data.Patients))
	for i, p := range data.Patients {
		var contact sql.NullString
		if p.Contact != nil {
			contact = sql.NullString{String: *p.Contact, Valid: true}
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO patients (first_name, last_name, contact) VALUES ($1, $2, $3) RETURNING id`,
			p.FirstName, p.LastName, contact,
		).Scan(&patientIDs[i])
		if err != nil {
			return fmt.Errorf("failed to insert patient: %w", err)
		}
	}

	for _, a := range data.Appointments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO appointments (date, status, patient_id, doctor_id) VALUES ($1, $2, $3, $4)`,
			a.Date, string(a.Status), patientIDs[a.PatientIdx], doctorIDs[a.DoctorIdx],
		)
		if err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
