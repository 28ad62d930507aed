package test

import (
	"time"

	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/test"
)

var conditions = []string{"Type 2 Diabetes", "Hypertension", "Coronary Artery Disease", "Colorectal Cancer"}

func RandomPrediction(patientId string) *predictions.Prediction {
	factorCount := test.Faker.IntBetween(1, 4)
	factors := make([]predictions.Factor, 0, factorCount)
	for i := 0; i < factorCount; i++ {
		factors = append(factors, predictions.Factor{
			Name:   test.Faker.Lorem().Word(),
			Weight: test.RandomFloat(0, 1),
		})
	}

	return &predictions.Prediction{
		PatientId:   patientId,
		DoctorId:    pointer.FromAny(test.Faker.UUID().V4()),
		Condition:   test.Faker.RandomStringElement(conditions),
		Probability: test.RandomFloat(0, 1),
		RiskLevel: predictions.RiskLevel(test.Faker.RandomStringElement([]string{
			string(predictions.RiskLevelLow),
			string(predictions.RiskLevelModerate),
			string(predictions.RiskLevelHigh),
			string(predictions.RiskLevelVeryHigh),
		})),
		Factors:         factors,
		Recommendations: []string{test.Faker.Lorem().Sentence(6)},
		ModelMetadata: predictions.ModelMetadata{
			"name":    "risk-model",
			"version": "1.4.2",
		},
		CreatedTime: test.RandomPastTime(90 * 24 * time.Hour),
	}
}
