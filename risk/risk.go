package risk

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
)

// Source tells whether a factor was derived from vitals or supplied by a prediction
type Source string

const (
	SourceVitals     Source = "vitals"
	SourcePrediction Source = "prediction"
)

const (
	FactorBloodPressure = "Blood Pressure"
	FactorBMI           = "BMI"

	minLevel = 0.1
	maxLevel = 1.0
)

// Factor is a named contributor to a patient's risk. The severity is always produced
// by the same rule that produced the level, so factors can only be built in this package.
type Factor struct {
	name     string
	severity Severity
	level    float64
	source   Source
}

func (f Factor) Name() string {
	return f.name
}

func (f Factor) Severity() Severity {
	return f.severity
}

func (f Factor) Level() float64 {
	return f.level
}

func (f Factor) Source() Source {
	return f.source
}

func clamp(level float64) float64 {
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
