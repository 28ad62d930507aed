package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wellspring-health/clinic/appointments"
	"github.com/wellspring-health/clinic/errors"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/testresults"
	"github.com/wellspring-health/clinic/vitals"
)

var (
	ErrUnavailable = fmt.Errorf("%w: unable to load dashboard", errors.InternalServerError)
)

//go:generate go tool mockgen -source=./dashboard.go -destination=./test/mock_dashboard.go -package test

type Service interface {
	Get(ctx context.Context, patientId string) (*Dashboard, error)
}

type Dashboard struct {
	// RecentMetrics is nil when the patient has no general vitals
	RecentMetrics *Metrics
	Predictions   []Prediction
	Appointments  []Appointment
	Tests         []testresults.TestResult
	RiskFactors   []risk.Factor
}

type BloodPressure struct {
	Systolic  *float64
	Diastolic *float64
}

type Metrics struct {
	BloodPressure BloodPressure
	BloodSugar    *float64
	HeartRate     *float64
	Weight        *float64
	RecordedTime  time.Time
}

type Doctor struct {
	Name           string
	Specialization *string
}

type Prediction struct {
	Id          string
	Condition   string
	RiskLevel   predictions.RiskLevel
	Probability float64
	CreatedAt   time.Time
	Doctor      Doctor
}

type Appointment struct {
	Id       string
	Date     time.Time
	Doctor   Doctor
	Type     string
	Location string
	Reason   string
	Status   appointments.Status
}

func NewMetrics(v *vitals.Vitals) *Metrics {
	if v == nil {
		return nil
	}

	return &Metrics{
		BloodPressure: BloodPressure{
			Systolic:  v.Systolic(),
			Diastolic: v.Diastolic(),
		},
		BloodSugar:   v.BloodSugar,
		HeartRate:    v.HeartRate,
		Weight:       v.Weight,
		RecordedTime: v.RecordedTime,
	}
}
