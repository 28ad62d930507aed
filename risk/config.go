package risk

import "github.com/kelseyhightower/envconfig"

// Thresholds of the factor rules. The defaults are the values agreed with the clinical team.
type Thresholds struct {
	SystolicElevated  float64 `envconfig:"CLINIC_RISK_SYSTOLIC_ELEVATED" default:"140"`
	SystolicSevere    float64 `envconfig:"CLINIC_RISK_SYSTOLIC_SEVERE" default:"160"`
	SystolicBaseline  float64 `envconfig:"CLINIC_RISK_SYSTOLIC_BASELINE" default:"120"`
	SystolicSpan      float64 `envconfig:"CLINIC_RISK_SYSTOLIC_SPAN" default:"80"`
	DiastolicElevated float64 `envconfig:"CLINIC_RISK_DIASTOLIC_ELEVATED" default:"90"`

	BMIOverweight  float64 `envconfig:"CLINIC_RISK_BMI_OVERWEIGHT" default:"25"`
	BMIUnderweight float64 `envconfig:"CLINIC_RISK_BMI_UNDERWEIGHT" default:"18.5"`
	BMISevere      float64 `envconfig:"CLINIC_RISK_BMI_SEVERE" default:"30"`
	BMIBaseline    float64 `envconfig:"CLINIC_RISK_BMI_BASELINE" default:"22"`
	BMISpan        float64 `envconfig:"CLINIC_RISK_BMI_SPAN" default:"15"`

	PredictionHighWeight     float64 `envconfig:"CLINIC_RISK_PREDICTION_HIGH_WEIGHT" default:"0.7"`
	PredictionModerateWeight float64 `envconfig:"CLINIC_RISK_PREDICTION_MODERATE_WEIGHT" default:"0.4"`
}

func NewThresholds() (Thresholds, error) {
	thresholds := Thresholds{}
	if err := envconfig.Process("", &thresholds); err != nil {
		return Thresholds{}, err
	}
	return thresholds, nil
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SystolicElevated:         140,
		SystolicSevere:           160,
		SystolicBaseline:         120,
		SystolicSpan:             80,
		DiastolicElevated:        90,
		BMIOverweight:            25,
		BMIUnderweight:           18.5,
		BMISevere:                30,
		BMIBaseline:              22,
		BMISpan:                  15,
		PredictionHighWeight:     0.7,
		PredictionModerateWeight: 0.4,
	}
}
