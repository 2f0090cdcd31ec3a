package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/model"
)

// PatientRepository handles patient records for the admin panel
type PatientRepository struct {
	db *database.Postgres
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db *database.Postgres) *PatientRepository {
	return &PatientRepository{db: db}
}

// List returns every patient ordered by last name
func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	query := `SELECT id, first_name, last_name, contact FROM patients ORDER BY last_name, first_name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := []model.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patients: %w", err)
	}
	return patients, nil
}

// GetByID retrieves a patient by ID
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT id, first_name, last_name, contact FROM patients WHERE id = $1`
	return scanPatient(r.db.QueryRowContext(ctx, query, id))
}

// Delete removes a patient together with their appointments
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPatient(row rowScanner) (*model.Patient, error) {
	var p model.Patient
	var contact sql.NullString

	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &contact)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan patient: %w", err)
	}

	if contact.Valid {
		p.Contact = &contact.String
	}
	return &p, nil
}
