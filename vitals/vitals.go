package vitals

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellspring-health/clinic/errors"
)

const CollectionName = "vitals"

var (
	ErrNotFound = fmt.Errorf("vitals %w", errors.NotFound)
)

// Type distinguishes general check-up snapshots from other measurement contexts
type Type string

const (
	TypeGeneral Type = "general"
)

//go:generate go tool mockgen -source=./vitals.go -destination=./test/mock_vitals.go -package test

type Service interface {
	Record(ctx context.Context, create *Vitals) (*Vitals, error)
	GetLatest(ctx context.Context, patientId string) (*Vitals, error)
}

type Repository interface {
	Create(ctx context.Context, create *Vitals) (*Vitals, error)
	// GetLatest returns the most recently recorded snapshot of the given type or ErrNotFound
	GetLatest(ctx context.Context, patientId string, vitalsType Type) (*Vitals, error)
}

type BloodPressure struct {
	Systolic  *float64 `bson:"systolic,omitempty"`
	Diastolic *float64 `bson:"diastolic,omitempty"`
}

type Vitals struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId     string              `bson:"patientId"`
	Type          Type                `bson:"type"`
	RecordedTime  time.Time           `bson:"recordedTime"`
	Height        *float64            `bson:"height,omitempty"`
	Weight        *float64            `bson:"weight,omitempty"`
	BloodPressure *BloodPressure      `bson:"bloodPressure,omitempty"`
	HeartRate     *float64            `bson:"heartRate,omitempty"`
	BloodSugar    *float64            `bson:"bloodSugar,omitempty"`
	CreatedTime   time.Time           `bson:"createdTime"`
}

func (v *Vitals) Systolic() *float64 {
	if v.BloodPressure == nil {
		return nil
	}
	return v.BloodPressure.Systolic
}

func (v *Vitals) Diastolic() *float64 {
	if v.BloodPressure == nil {
		return nil
	}
	return v.BloodPressure.Diastolic
}
