package test

import (
	"time"

	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/vitals"
)

func RandomVitals(patientId string) *vitals.Vitals {
	return &vitals.Vitals{
		PatientId:    patientId,
		Type:         vitals.TypeGeneral,
		RecordedTime: test.RandomPastTime(30 * 24 * time.Hour),
		Height:       pointer.FromAny(test.RandomFloat(150, 200)),
		Weight:       pointer.FromAny(test.RandomFloat(50, 110)),
		BloodPressure: &vitals.BloodPressure{
			Systolic:  pointer.FromAny(test.RandomFloat(95, 180)),
			Diastolic: pointer.FromAny(test.RandomFloat(60, 110)),
		},
		HeartRate:  pointer.FromAny(test.RandomFloat(50, 110)),
		BloodSugar: pointer.FromAny(test.RandomFloat(70, 200)),
	}
}
