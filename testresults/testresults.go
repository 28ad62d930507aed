package testresults

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "test_results"

type Interpretation string

const (
	InterpretationNormal   Interpretation = "normal"
	InterpretationAbnormal Interpretation = "abnormal"
	InterpretationLow      Interpretation = "low"
	InterpretationHigh     Interpretation = "high"
	InterpretationCritical Interpretation = "critical"
)

//go:generate go tool mockgen -source=./testresults.go -destination=./test/mock_testresults.go -package test

type Service interface {
	Create(ctx context.Context, create *TestResult) (*TestResult, error)
	ListRecent(ctx context.Context, patientId string, limit int) ([]TestResult, error)
}

type Repository interface {
	Create(ctx context.Context, create *TestResult) (*TestResult, error)
	// ListRecent returns at most limit results of the patient, most recent result date first
	ListRecent(ctx context.Context, patientId string, limit int) ([]TestResult, error)
}

type Component struct {
	Name           string         `bson:"name"`
	Value          string         `bson:"value"`
	Unit           string         `bson:"unit,omitempty"`
	ReferenceRange string         `bson:"referenceRange,omitempty"`
	Interpretation Interpretation `bson:"interpretation,omitempty"`
}

type TestResult struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId   string              `bson:"patientId"`
	DoctorId    string              `bson:"doctorId"`
	TestId      string              `bson:"testId"`
	TestName    string              `bson:"testName"`
	Narrative   string              `bson:"narrative,omitempty"`
	Components  []Component         `bson:"components"`
	IsAbnormal  bool                `bson:"isAbnormal"`
	ResultDate  time.Time           `bson:"resultDate"`
	CreatedTime time.Time           `bson:"createdTime"`
}

// ComputeAbnormal returns true when any component has an interpretation other than normal.
// Components without an interpretation are not considered abnormal.
func ComputeAbnormal(components []Component) bool {
	for _, c := range components {
		if c.Interpretation != "" && c.Interpretation != InterpretationNormal {
			return true
		}
	}
	return false
}
