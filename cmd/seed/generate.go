package main

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/medsystem/medsystem/internal/model"
)

type seedOptions struct {
	Doctors      int
	Patients     int
	Appointments int
	Seed         uint64
}

type seedDoctor struct {
	FirstName      string
	LastName       string
	Specialization string
	Email          string
}

type seedAppointment struct {
	Date       time.Time
	Status     model.AppointmentStatus
	PatientIdx int
	DoctorIdx  int
}

type dataset struct {
	Doctors      []seedDoctor
	Patients     []model.Patient
	Appointments []seedAppointment
}

var specializations = []string{
	"Internista",
	"Kardiolog",
	"Dermatolog",
	"Pediatra",
	"Okulista",
	"Laryngolog",
}

// generate builds demo data with appointments on today's date in today's
// location, between 08:00 and 17:45 on quarter-hour slots. Roughly one in
// ten patients has no usable email so skipped reminders show up too.
func generate(opts seedOptions, today time.Time) *dataset {
	f := gofakeit.New(opts.Seed)

	data := &dataset{}
	if opts.Doctors <= 0 || opts.Patients <= 0 {
		return data
	}

	for i := 0; i < opts.Doctors; i++ {
		data.Doctors = append(data.Doctors, seedDoctor{
			FirstName:      f.FirstName(),
			LastName:       f.LastName(),
			Specialization: specializations[f.Number(0, len(specializations)-1)],
			Email:          f.Email(),
		})
	}

	for i := 0; i < opts.Patients; i++ {
		p := model.Patient{FirstName: f.FirstName(), LastName: f.LastName()}
		switch n := f.Number(1, 20); {
		case n == 1:
			// no contact on file
		case n == 2:
			phone := f.Phone()
			p.Contact = &phone
		default:
			addr := f.Email()
			p.Contact = &addr
		}
		data.Patients = append(data.Patients, p)
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for i := 0; i < opts.Appointments; i++ {
		slot := f.Number(8*4, 18*4-1)
		status := model.AppointmentStatusScheduled
		if f.Number(1, 5) == 1 {
			status = model.AppointmentStatusCancelled
		}
		data.Appointments = append(data.Appointments, seedAppointment{
			Date:       midnight.Add(time.Duration(slot) * 15 * time.Minute),
			Status:     status,
			PatientIdx: f.Number(0, len(data.Patients)-1),
			DoctorIdx:  f.Number(0, len(data.Doctors)-1),
		})
	}

	return data
}
