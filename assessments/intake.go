package assessments

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/wellspring-health/clinic/errors"
)

type SmokingStatus string

const (
	SmokingStatusNever   SmokingStatus = "never"
	SmokingStatusFormer  SmokingStatus = "former"
	SmokingStatusCurrent SmokingStatus = "current"
)

var smokingStatuses = []SmokingStatus{SmokingStatusNever, SmokingStatusFormer, SmokingStatusCurrent}

type AlcoholConsumption string

const (
	AlcoholConsumptionNone     AlcoholConsumption = "none"
	AlcoholConsumptionLight    AlcoholConsumption = "light"
	AlcoholConsumptionModerate AlcoholConsumption = "moderate"
	AlcoholConsumptionHeavy    AlcoholConsumption = "heavy"
)

var alcoholConsumptions = []AlcoholConsumption{
	AlcoholConsumptionNone,
	AlcoholConsumptionLight,
	AlcoholConsumptionModerate,
	AlcoholConsumptionHeavy,
}

var fold = cases.Fold()

// ParseSmokingStatus accepts the status in any letter case
func ParseSmokingStatus(value string) (SmokingStatus, error) {
	normalized := fold.String(strings.TrimSpace(value))
	for _, s := range smokingStatuses {
		if string(s) == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: invalid smoking status %q", errors.BadRequest, value)
}

// ParseAlcoholConsumption accepts the consumption in any letter case
func ParseAlcoholConsumption(value string) (AlcoholConsumption, error) {
	normalized := fold.String(strings.TrimSpace(value))
	for _, a := range alcoholConsumptions {
		if string(a) == normalized {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: invalid alcohol consumption %q", errors.BadRequest, value)
}

// Intake are the answers of the intake form which contribute to the risk assessment
type Intake struct {
	// Height in centimeters
	Height *float64
	// Weight in kilograms
	Weight             *float64
	SmokingStatus      SmokingStatus
	AlcoholConsumption AlcoholConsumption
	FamilyHistory      FamilyHistory
}
