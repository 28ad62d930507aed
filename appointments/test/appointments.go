package test

import (
	"time"

	"github.com/wellspring-health/clinic/appointments"
	"github.com/wellspring-health/clinic/test"
)

var appointmentTypes = []string{"Consultation", "Follow-up", "Screening", "Lab Review"}

func RandomAppointment(patientId string, doctorId string) *appointments.Appointment {
	return &appointments.Appointment{
		PatientId: patientId,
		DoctorId:  doctorId,
		Date:      test.RandomFutureTime(60 * 24 * time.Hour),
		Type:      test.Faker.RandomStringElement(appointmentTypes),
		Location:  test.Faker.Address().City(),
		Reason:    test.Faker.Lorem().Sentence(4),
		Status: appointments.Status(test.Faker.RandomStringElement([]string{
			string(appointments.StatusScheduled),
			string(appointments.StatusConfirmed),
		})),
	}
}
