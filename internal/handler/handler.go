package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/model"
)

// HealthChecker is a dependency that can report whether it is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ReminderRunner executes one reminder batch
type ReminderRunner interface {
	SendDailyReminders(ctx context.Context) (*model.ReminderReport, error)
}

// DoctorStore reads and removes doctor records
type DoctorStore interface {
	List(ctx context.Context) ([]model.Doctor, error)
	GetByID(ctx context.Context, id int64) (*model.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

// PatientStore reads and removes patient records
type PatientStore interface {
	List(ctx context.Context) ([]model.Patient, error)
	GetByID(ctx context.Context, id int64) (*model.Patient, error)
	Delete(ctx context.Context, id int64) error
}

// Handler holds all HTTP handlers
type Handler struct {
	db        HealthChecker
	rdb       HealthChecker
	reminders ReminderRunner
	doctors   DoctorStore
	patients  PatientStore
	log       *logger.Logger
	cfg       *config.Config
}

// New creates a new Handler instance
func New(db, rdb HealthChecker, reminders ReminderRunner, doctors DoctorStore, patients PatientStore, log *logger.Logger, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		rdb:       rdb,
		reminders: reminders,
		doctors:   doctors,
		patients:  patients,
		log:       log,
		cfg:       cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the flat {"error": "..."} body the cron caller and the
// admin panel read
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
