package predictions

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellspring-health/clinic/errors"
)

const CollectionName = "predictions"

var (
	ErrNotFound      = fmt.Errorf("prediction %w", errors.NotFound)
	ErrInvalidWeight = fmt.Errorf("%w: factor weight must be between 0 and 1", errors.BadRequest)
	ErrInvalidProb   = fmt.Errorf("%w: probability must be between 0 and 1", errors.BadRequest)
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelVeryHigh RiskLevel = "very-high"
)

//go:generate go tool mockgen -source=./predictions.go -destination=./test/mock_predictions.go -package test

type Service interface {
	Create(ctx context.Context, create *Prediction) (*Prediction, error)
	ListByPatient(ctx context.Context, patientId string) ([]Prediction, error)
}

type Repository interface {
	Create(ctx context.Context, create *Prediction) (*Prediction, error)
	// ListByPatient returns all predictions of the patient, most recent first
	ListByPatient(ctx context.Context, patientId string) ([]Prediction, error)
}

// Factor is a named contributor to a prediction with a weight between 0 and 1
type Factor struct {
	Name   string  `bson:"name"`
	Weight float64 `bson:"weight"`
}

// ModelMetadata is opaque information about the model that produced a prediction
type ModelMetadata map[string]interface{}

// ModelInfo is the part of the model metadata which is used for logging
type ModelInfo struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

func (m ModelMetadata) Info() (ModelInfo, error) {
	info := ModelInfo{}
	if len(m) == 0 {
		return info, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &info,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return info, err
	}
	if err := decoder.Decode(map[string]interface{}(m)); err != nil {
		return info, fmt.Errorf("unable to decode model metadata: %w", err)
	}
	return info, nil
}

type Prediction struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId       string              `bson:"patientId"`
	DoctorId        *string             `bson:"doctorId,omitempty"`
	Condition       string              `bson:"condition"`
	Probability     float64             `bson:"probability"`
	RiskLevel       RiskLevel           `bson:"riskLevel"`
	Factors         []Factor            `bson:"factors"`
	Recommendations []string            `bson:"recommendations"`
	ModelMetadata   ModelMetadata       `bson:"modelMetadata,omitempty"`
	CreatedTime     time.Time           `bson:"createdTime"`
}

func (p *Prediction) Validate() error {
	if p.Probability < 0 || p.Probability > 1 {
		return ErrInvalidProb
	}
	for _, f := range p.Factors {
		if f.Weight < 0 || f.Weight > 1 {
			return fmt.Errorf("%w: %q has weight %v", ErrInvalidWeight, f.Name, f.Weight)
		}
	}
	return nil
}
