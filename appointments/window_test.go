package appointments_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wellspring-health/clinic/appointments"
)

var _ = Describe("Upcoming", func() {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	appointment := func(reason string, offset time.Duration, status appointments.Status) appointments.Appointment {
		return appointments.Appointment{
			PatientId: "patient",
			DoctorId:  "doctor",
			Date:      now.Add(offset),
			Reason:    reason,
			Status:    status,
		}
	}

	reasons := func(list []appointments.Appointment) []string {
		result := make([]string, 0, len(list))
		for _, a := range list {
			result = append(result, a.Reason)
		}
		return result
	}

	It("returns at most the five nearest active future appointments in ascending order", func() {
		list := []appointments.Appointment{
			appointment("g", 7*time.Hour, appointments.StatusScheduled),
			appointment("a", 1*time.Hour, appointments.StatusConfirmed),
			appointment("c", 3*time.Hour, appointments.StatusScheduled),
			appointment("f", 6*time.Hour, appointments.StatusConfirmed),
			appointment("b", 2*time.Hour, appointments.StatusScheduled),
			appointment("e", 5*time.Hour, appointments.StatusScheduled),
			appointment("d", 4*time.Hour, appointments.StatusScheduled),
		}

		Expect(reasons(appointments.Upcoming(list, now, 5))).To(Equal([]string{"a", "b", "c", "d", "e"}))
	})

	It("excludes inactive appointments", func() {
		list := []appointments.Appointment{
			appointment("completed", time.Hour, appointments.StatusCompleted),
			appointment("cancelled", time.Hour, appointments.StatusCancelled),
			appointment("no-show", time.Hour, appointments.StatusNoShow),
			appointment("confirmed", time.Hour, appointments.StatusConfirmed),
		}

		Expect(reasons(appointments.Upcoming(list, now, 5))).To(Equal([]string{"confirmed"}))
	})

	It("excludes appointments at or before now", func() {
		list := []appointments.Appointment{
			appointment("past", -time.Hour, appointments.StatusScheduled),
			appointment("now", 0, appointments.StatusScheduled),
			appointment("future", time.Second, appointments.StatusScheduled),
		}

		Expect(reasons(appointments.Upcoming(list, now, 5))).To(Equal([]string{"future"}))
	})

	It("returns an empty list when nothing qualifies", func() {
		result := appointments.Upcoming(nil, now, 5)
		Expect(result).ToNot(BeNil())
		Expect(result).To(BeEmpty())
	})

	It("does not modify the input", func() {
		list := []appointments.Appointment{
			appointment("b", 2*time.Hour, appointments.StatusScheduled),
			appointment("a", time.Hour, appointments.StatusScheduled),
		}
		appointments.Upcoming(list, now, 5)
		Expect(reasons(list)).To(Equal([]string{"b", "a"}))
	})
})
