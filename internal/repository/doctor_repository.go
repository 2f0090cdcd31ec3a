package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/model"
)

// DoctorRepository handles doctor records for the admin panel
type DoctorRepository struct {
	db *database.Postgres
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db *database.Postgres) *DoctorRepository {
	return &DoctorRepository{db: db}
}

const doctorColumns = `id, first_name, last_name, specialization, email`

// List returns every doctor ordered by last name
func (r *DoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY last_name, first_name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	doctors := []model.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate doctors: %w", err)
	}
	return doctors, nil
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	return scanDoctor(r.db.QueryRowContext(ctx, query, id))
}

// Delete removes a doctor and, through the foreign key, their appointments
func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoctor(row rowScanner) (*model.Doctor, error) {
	var d model.Doctor
	var specialization, email sql.NullString

	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &specialization, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan doctor: %w", err)
	}

	if specialization.Valid {
		d.Specialization = &specialization.String
	}
	if email.Valid {
		d.Email = &email.String
	}
	return &d, nil
}
