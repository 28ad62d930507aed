package test

import (
	"time"

	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/testresults"
)

var panels = []string{"Complete Blood Count", "Lipid Panel", "HbA1c", "Metabolic Panel"}

func RandomComponent(interpretation testresults.Interpretation) testresults.Component {
	return testresults.Component{
		Name:           test.Faker.Lorem().Word(),
		Value:          test.Faker.Numerify("##.#"),
		Unit:           "mg/dL",
		ReferenceRange: "10-50",
		Interpretation: interpretation,
	}
}

func RandomTestResult(patientId string, doctorId string) *testresults.TestResult {
	return &testresults.TestResult{
		PatientId:  patientId,
		DoctorId:   doctorId,
		TestId:     test.Faker.UUID().V4(),
		TestName:   test.Faker.RandomStringElement(panels),
		Narrative:  test.Faker.Lorem().Sentence(8),
		Components: []testresults.Component{RandomComponent(testresults.InterpretationNormal)},
		ResultDate: test.RandomPastTime(180 * 24 * time.Hour),
	}
}
