package test

import (
	"github.com/wellspring-health/clinic/assessments"
	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/vitals"
)

func RandomAssessment(patientId string, doctorId string) *assessments.Assessment {
	return &assessments.Assessment{
		PatientId: patientId,
		DoctorId:  doctorId,
		Measurements: assessments.Measurements{
			Height: pointer.FromAny(test.RandomFloat(150, 200)),
			Weight: pointer.FromAny(test.RandomFloat(50, 110)),
			BloodPressure: &vitals.BloodPressure{
				Systolic:  pointer.FromAny(test.RandomFloat(100, 160)),
				Diastolic: pointer.FromAny(test.RandomFloat(60, 100)),
			},
			BloodSugar: pointer.FromAny(test.RandomFloat(70, 180)),
		},
		SmokingStatus: assessments.SmokingStatus(test.Faker.RandomStringElement([]string{
			string(assessments.SmokingStatusNever),
			string(assessments.SmokingStatusFormer),
			string(assessments.SmokingStatusCurrent),
		})),
		AlcoholConsumption: assessments.AlcoholConsumption(test.Faker.RandomStringElement([]string{
			string(assessments.AlcoholConsumptionNone),
			string(assessments.AlcoholConsumptionLight),
			string(assessments.AlcoholConsumptionModerate),
			string(assessments.AlcoholConsumptionHeavy),
		})),
		FamilyHistory: assessments.FamilyHistory{
			Cancer:       test.Faker.Bool(),
			Diabetes:     test.Faker.Bool(),
			HeartDisease: test.Faker.Bool(),
			Hypertension: test.Faker.Bool(),
		},
		Symptoms:        test.Faker.Lorem().Sentence(6),
		TestResults:     test.Faker.Lorem().Sentence(6),
		DoctorNotes:     test.Faker.Lorem().Sentence(10),
		Recommendations: test.Faker.Lorem().Sentence(8),
	}
}
