package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/medsystem/medsystem/internal/repository"
)

// ListDoctors handles GET /api/doctors
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctors.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list doctors")
		writeError(w, http.StatusInternalServerError, "Failed to list doctors")
		return
	}
	writeJSON(w, http.StatusOK, doctors)
}

// GetDoctor handles GET /api/doctors/{id} and GET /api/doctors/get-doctor?id=
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	doctor, err := h.doctors.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Doctor not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("failed to get doctor")
		writeError(w, http.StatusInternalServerError, "Failed to get doctor")
		return
	}
	writeJSON(w, http.StatusOK, doctor)
}

// DeleteDoctor handles DELETE /api/doctors/{id}
func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	err := h.doctors.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Doctor not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("failed to delete doctor")
		writeError(w, http.StatusInternalServerError, "Failed to delete doctor")
		return
	}

	h.log.Info().Int64("doctor_id", id).Msg("doctor deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Doctor deleted",
		"id":      id,
	})
}

// ListPatients handles GET /api/patients
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patients.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list patients")
		writeError(w, http.StatusInternalServerError, "Failed to list patients")
		return
	}
	writeJSON(w, http.StatusOK, patients)
}

// GetPatient handles GET /api/patients/get-patient?id=
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	patient, err := h.patients.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("patient_id", id).Msg("failed to get patient")
		writeError(w, http.StatusInternalServerError, "Failed to get patient")
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/patients/{id}
func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	err := h.patients.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Patient not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("patient_id", id).Msg("failed to delete patient")
		writeError(w, http.StatusInternalServerError, "Failed to delete patient")
		return
	}

	h.log.Info().Int64("patient_id", id).Msg("patient deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Patient deleted",
		"id":      id,
	})
}

// recordID reads the record ID from the {id} path segment, falling back to
// the ?id= query parameter. It writes a 400 and reports false when the ID is
// missing or not a positive integer.
func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		raw = r.URL.Query().Get("id")
	}
	if raw == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}
