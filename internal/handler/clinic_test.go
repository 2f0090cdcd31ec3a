package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/model"
	"github.com/medsystem/medsystem/internal/repository"
)

type memDoctors struct {
	byID map[int64]model.Doctor
	err  error
}

func newMemDoctors(doctors ...model.Doctor) *memDoctors {
	m := &memDoctors{byID: map[int64]model.Doctor{}}
	for _, d := range doctors {
		m.byID[d.ID] = d
	}
	return m
}

func (m *memDoctors) List(context.Context) ([]model.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Doctor{}
	for _, d := range m.byID {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDoctors) GetByID(_ context.Context, id int64) (*model.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (m *memDoctors) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memPatients struct {
	byID map[int64]model.Patient
	err  error
}

func newMemPatients(patients ...model.Patient) *memPatients {
	m := &memPatients{byID: map[int64]model.Patient{}}
	for _, p := range patients {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memPatients) List(context.Context) ([]model.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Patient{}
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPatients) GetByID(_ context.Context, id int64) (*model.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *memPatients) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

func newClinicHandler(doctors *memDoctors, patients *memPatients) *Handler {
	cfg := &config.Config{Reminder: config.ReminderConfig{RunTimeout: time.Minute}}
	return New(fakeChecker{}, fakeChecker{}, &fakeRunner{}, doctors, patients, logger.Nop(), cfg)
}

func TestGetDoctor_QueryParameter(t *testing.T) {
	doctors := newMemDoctors(model.Doctor{
		ID: 3, FirstName: "Anna", LastName: "Nowak",
		Specialization: strPtr("Kardiolog"), Email: strPtr("anna.nowak@example.com"),
	})
	h := newClinicHandler(doctors, newMemPatients())

	rec := httptest.NewRecorder()
	h.GetDoctor(rec, httptest.NewRequest(http.MethodGet, "/api/doctors/get-doctor?id=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 3,
		"first_name": "Anna",
		"last_name": "Nowak",
		"specialization": "Kardiolog",
		"email": "anna.nowak@example.com"
	}`, rec.Body.String())
}

func TestGetDoctor_PathValue(t *testing.T) {
	doctors := newMemDoctors(model.Doctor{ID: 3, FirstName: "Anna", LastName: "Nowak"})
	h := newClinicHandler(doctors, newMemPatients())

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.GetDoctor(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Anna", decodeBody(t, rec)["first_name"])
}

func TestGetDoctor_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		store  error
		status int
		body   string
	}{
		{"missing id", "/api/doctors/get-doctor", nil, http.StatusBadRequest, `{"error":"ID is required"}`},
		{"non numeric", "/api/doctors/get-doctor?id=abc", nil, http.StatusBadRequest, `{"error":"Invalid ID"}`},
		{"negative", "/api/doctors/get-doctor?id=-1", nil, http.StatusBadRequest, `{"error":"Invalid ID"}`},
		{"unknown", "/api/doctors/get-doctor?id=404", nil, http.StatusNotFound, `{"error":"Doctor not found"}`},
		{"store down", "/api/doctors/get-doctor?id=1", errors.New("connection refused"), http.StatusInternalServerError, `{"error":"Failed to get doctor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors := newMemDoctors()
			doctors.err = tt.store
			h := newClinicHandler(doctors, newMemPatients())

			rec := httptest.NewRecorder()
			h.GetDoctor(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestDeleteDoctor(t *testing.T) {
	doctors := newMemDoctors(model.Doctor{ID: 5, FirstName: "Piotr", LastName: "Adamski"})
	h := newClinicHandler(doctors, newMemPatients())

	del := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/doctors/5", nil)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.DeleteDoctor(rec, req)
		return rec
	}

	first := del()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message":"Doctor deleted","id":5}`, first.Body.String())
	assert.Empty(t, doctors.byID)

	second := del()
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.JSONEq(t, `{"error":"Doctor not found"}`, second.Body.String())
}

func TestListDoctors(t *testing.T) {
	h := newClinicHandler(newMemDoctors(), newMemPatients())

	rec := httptest.NewRecorder()
	h.ListDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	failing := newMemDoctors()
	failing.err = errors.New("connection refused")
	h = newClinicHandler(failing, newMemPatients())
	rec = httptest.NewRecorder()
	h.ListDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to list doctors"}`, rec.Body.String())
}

func TestPatients(t *testing.T) {
	patients := newMemPatients(model.Patient{ID: 1, FirstName: "Jan", LastName: "Kowalski", Contact: strPtr("jan@example.com")})
	h := newClinicHandler(newMemDoctors(), patients)

	rec := httptest.NewRecorder()
	h.ListPatients(rec, httptest.NewRequest(http.MethodGet, "/api/patients", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"first_name":"Jan","last_name":"Kowalski","contact":"jan@example.com"}]`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.GetPatient(rec, httptest.NewRequest(http.MethodGet, "/api/patients/get-patient?id=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kowalski", decodeBody(t, rec)["last_name"])

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/1", nil)
	req.SetPathValue("id", "1")
	rec = httptest.NewRecorder()
	h.DeletePatient(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Patient deleted","id":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.GetPatient(rec, httptest.NewRequest(http.MethodGet, "/api/patients/get-patient?id=1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Patient not found"}`, rec.Body.String())
}
