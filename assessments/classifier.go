package assessments

import (
	"math"

	"github.com/kelseyhightower/envconfig"

	"github.com/wellspring-health/clinic/risk"
)

type BMICategory string

const (
	BMICategoryUnderweight BMICategory = "Underweight"
	BMICategoryNormal      BMICategory = "Normal"
	BMICategoryOverweight  BMICategory = "Overweight"
	BMICategoryObese       BMICategory = "Obese"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelModerate RiskLevel = "Moderate"
	RiskLevelHigh     RiskLevel = "High"
)

// RiskAssessment is computed once when the assessment is submitted and is never recomputed
type RiskAssessment struct {
	BMI             *float64     `bson:"bmi,omitempty"`
	BMICategory     *BMICategory `bson:"bmiCategory,omitempty"`
	RiskFactorCount int          `bson:"riskFactorCount"`
	CancerRiskLevel RiskLevel    `bson:"cancerRiskLevel"`
}

type ClassifierConfig struct {
	BMIUnderweight float64 `envconfig:"CLINIC_INTAKE_BMI_UNDERWEIGHT" default:"18.5"`
	BMIOverweight  float64 `envconfig:"CLINIC_INTAKE_BMI_OVERWEIGHT" default:"25"`
	BMIObese       float64 `envconfig:"CLINIC_INTAKE_BMI_OBESE" default:"30"`

	HighRiskFactorCount     int `envconfig:"CLINIC_INTAKE_HIGH_RISK_FACTOR_COUNT" default:"4"`
	ModerateRiskFactorCount int `envconfig:"CLINIC_INTAKE_MODERATE_RISK_FACTOR_COUNT" default:"2"`
}

func NewClassifierConfig() (ClassifierConfig, error) {
	cfg := ClassifierConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		BMIUnderweight:          18.5,
		BMIOverweight:           25,
		BMIObese:                30,
		HighRiskFactorCount:     4,
		ModerateRiskFactorCount: 2,
	}
}

type Classifier struct {
	cfg ClassifierConfig
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify never fails. The bmi and its category are nil when the height or weight is missing
// or not positive.
func (c *Classifier) Classify(intake Intake) RiskAssessment {
	result := RiskAssessment{}
	count := 0

	if bmi, ok := c.bmi(intake); ok {
		rounded := math.Round(bmi*10) / 10
		category := c.category(rounded)
		result.BMI = &rounded
		result.BMICategory = &category
		if rounded >= c.cfg.BMIObese {
			count++
		}
	}

	switch intake.SmokingStatus {
	case SmokingStatusCurrent:
		count += 2
	case SmokingStatusFormer:
		count++
	}
	if intake.AlcoholConsumption == AlcoholConsumptionHeavy {
		count++
	}
	count += intake.FamilyHistory.Count()

	result.RiskFactorCount = count
	result.CancerRiskLevel = c.level(count)
	return result
}

func (c *Classifier) bmi(intake Intake) (float64, bool) {
	if intake.Weight == nil || *intake.Weight <= 0 {
		return 0, false
	}
	return risk.BMI(intake.Height, intake.Weight)
}

func (c *Classifier) category(bmi float64) BMICategory {
	switch {
	case bmi < c.cfg.BMIUnderweight:
		return BMICategoryUnderweight
	case bmi < c.cfg.BMIOverweight:
		return BMICategoryNormal
	case bmi < c.cfg.BMIObese:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}

func (c *Classifier) level(count int) RiskLevel {
	if count >= c.cfg.HighRiskFactorCount {
		return RiskLevelHigh
	} else if count >= c.cfg.ModerateRiskFactorCount {
		return RiskLevelModerate
	}
	return RiskLevelLow
}
