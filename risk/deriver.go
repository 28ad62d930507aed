package risk

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/vitals"
)

type Deriver struct {
	thresholds Thresholds
}

func NewDeriver(thresholds Thresholds) *Deriver {
	return &Deriver{thresholds: thresholds}
}

// Derive returns the factors derived from the vitals followed by the factors of the predictions
func (d *Deriver) Derive(v *vitals.Vitals, preds []predictions.Prediction) []Factor {
	return d.MergePredictions(d.FromVitals(v), preds)
}

// FromVitals evaluates the blood pressure and bmi rules independently
func (d *Deriver) FromVitals(v *vitals.Vitals) []Factor {
	factors := make([]Factor, 0, 2)
	if v == nil {
		return factors
	}

	if f, ok := d.bloodPressure(v); ok {
		factors = append(factors, f)
	}
	if f, ok := d.bmi(v); ok {
		factors = append(factors, f)
	}
	return factors
}

// MergePredictions appends the factors of each prediction in order, skipping names which are already
// present. The seed factors are always retained and take precedence.
func (d *Deriver) MergePredictions(seed []Factor, preds []predictions.Prediction) []Factor {
	c := newCollection(len(seed))
	for _, f := range seed {
		c.add(f)
	}

	for _, p := range preds {
		for _, pf := range p.Factors {
			if c.contains(pf.Name) {
				continue
			}
			c.add(Factor{
				name:     pf.Name,
				severity: d.predictionSeverity(pf.Weight),
				level:    pf.Weight,
				source:   SourcePrediction,
			})
		}
	}

	return c.factors
}

func (d *Deriver) bloodPressure(v *vitals.Vitals) (Factor, bool) {
	systolic := v.Systolic()
	diastolic := v.Diastolic()

	systolicElevated := systolic != nil && *systolic > d.thresholds.SystolicElevated
	diastolicElevated := diastolic != nil && *diastolic > d.thresholds.DiastolicElevated
	if !systolicElevated && !diastolicElevated {
		return Factor{}, false
	}

	level := minLevel
	severity := SeverityModerate
	if systolic != nil {
		level = clamp((*systolic - d.thresholds.SystolicBaseline) / d.thresholds.SystolicSpan)
		if *systolic > d.thresholds.SystolicSevere {
			severity = SeverityHigh
		}
	}

	return Factor{
		name:     FactorBloodPressure,
		severity: severity,
		level:    level,
		source:   SourceVitals,
	}, true
}

func (d *Deriver) bmi(v *vitals.Vitals) (Factor, bool) {
	bmi, ok := BMI(v.Height, v.Weight)
	if !ok {
		return Factor{}, false
	}
	if bmi <= d.thresholds.BMIOverweight && bmi >= d.thresholds.BMIUnderweight {
		return Factor{}, false
	}

	severity := SeverityModerate
	if bmi > d.thresholds.BMISevere {
		severity = SeverityHigh
	}

	return Factor{
		name:     FactorBMI,
		severity: severity,
		level:    clamp(math.Abs(bmi-d.thresholds.BMIBaseline) / d.thresholds.BMISpan),
		source:   SourceVitals,
	}, true
}

func (d *Deriver) predictionSeverity(weight float64) Severity {
	if weight > d.thresholds.PredictionHighWeight {
		return SeverityHigh
	} else if weight > d.thresholds.PredictionModerateWeight {
		return SeverityModerate
	}
	return SeverityLow
}

// BMI computes the body mass index from the height in centimeters and weight in kilograms.
// The second return value is false when the height is missing or not positive, or the weight is missing.
func BMI(heightCm *float64, weightKg *float64) (float64, bool) {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return 0, false
	}
	heightM := *heightCm / 100
	return *weightKg / (heightM * heightM), true
}

type collection struct {
	factors []Factor
	names   mapset.Set[string]
}

func newCollection(capacity int) *collection {
	return &collection{
		factors: make([]Factor, 0, capacity),
		names:   mapset.NewThreadUnsafeSet[string](),
	}
}

func (c *collection) contains(name string) bool {
	return c.names.Contains(name)
}

func (c *collection) add(f Factor) {
	if c.names.Add(f.name) {
		c.factors = append(c.factors, f)
	}
}
