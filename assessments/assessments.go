package assessments

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellspring-health/clinic/errors"
	"github.com/wellspring-health/clinic/store"
	"github.com/wellspring-health/clinic/vitals"
)

const CollectionName = "assessments"

var (
	ErrNotFound = fmt.Errorf("assessment %w", errors.NotFound)
)

//go:generate go tool mockgen -source=./assessments.go -destination=./test/mock_assessments.go -package test

type Service interface {
	// Submit classifies the intake, persists the assessment and notifies the patient
	Submit(ctx context.Context, create *Assessment) (*Assessment, error)
	Get(ctx context.Context, id string) (*Assessment, error)
	ListByPatient(ctx context.Context, patientId string, pagination store.Pagination) ([]Assessment, error)
	// Classify returns the risk assessment of the intake without persisting anything
	Classify(intake Intake) RiskAssessment
}

type Repository interface {
	Create(ctx context.Context, create *Assessment) (*Assessment, error)
	Get(ctx context.Context, id string) (*Assessment, error)
	// ListByPatient returns the assessments of the patient, newest first
	ListByPatient(ctx context.Context, patientId string, pagination store.Pagination) ([]Assessment, error)
}

type FamilyHistory struct {
	Cancer       bool `bson:"cancer"`
	Diabetes     bool `bson:"diabetes"`
	HeartDisease bool `bson:"heartDisease"`
	Hypertension bool `bson:"hypertension"`
}

func (f FamilyHistory) Count() int {
	count := 0
	for _, present := range []bool{f.Cancer, f.Diabetes, f.HeartDisease, f.Hypertension} {
		if present {
			count++
		}
	}
	return count
}

// Measurements are the vitals taken during the intake
type Measurements struct {
	Height        *float64              `bson:"height,omitempty"`
	Weight        *float64              `bson:"weight,omitempty"`
	BloodPressure *vitals.BloodPressure `bson:"bloodPressure,omitempty"`
	BloodSugar    *float64              `bson:"bloodSugar,omitempty"`
}

type Assessment struct {
	Id                 *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId          string              `bson:"patientId"`
	DoctorId           string              `bson:"doctorId"`
	Measurements       Measurements        `bson:"vitals"`
	SmokingStatus      SmokingStatus       `bson:"smokingStatus"`
	AlcoholConsumption AlcoholConsumption  `bson:"alcoholConsumption"`
	FamilyHistory      FamilyHistory       `bson:"familyHistory"`
	Symptoms           string              `bson:"symptoms,omitempty"`
	TestResults        string              `bson:"testResults,omitempty"`
	DoctorNotes        string              `bson:"doctorNotes,omitempty"`
	Recommendations    string              `bson:"recommendations,omitempty"`
	RiskAssessment     RiskAssessment      `bson:"riskAssessment"`
	CreatedTime        time.Time           `bson:"createdTime"`
}

// Intake returns the fields of the assessment which are used for classification
func (a *Assessment) Intake() Intake {
	return Intake{
		Height:             a.Measurements.Height,
		Weight:             a.Measurements.Weight,
		SmokingStatus:      a.SmokingStatus,
		AlcoholConsumption: a.AlcoholConsumption,
		FamilyHistory:      a.FamilyHistory,
	}
}

func (a *Assessment) IdHex() string {
	if a.Id == nil {
		return ""
	}
	return a.Id.Hex()
}
