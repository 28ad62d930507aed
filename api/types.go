package api

import (
	"time"
)

const (
	SessionTokenScopes = "sessionToken.Scopes"
)

// Defines values for AlcoholConsumption.
const (
	AlcoholConsumptionHeavy    AlcoholConsumption = "heavy"
	AlcoholConsumptionLight    AlcoholConsumption = "light"
	AlcoholConsumptionModerate AlcoholConsumption = "moderate"
	AlcoholConsumptionNone     AlcoholConsumption = "none"
)

// Defines values for AppointmentStatus.
const (
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
)

// Defines values for ComponentInterpretation.
const (
	ComponentInterpretationAbnormal ComponentInterpretation = "abnormal"
	ComponentInterpretationCritical ComponentInterpretation = "critical"
	ComponentInterpretationHigh     ComponentInterpretation = "high"
	ComponentInterpretationLow      ComponentInterpretation = "low"
	ComponentInterpretationNormal   ComponentInterpretation = "normal"
)

// Defines values for PredictionRiskLevel.
const (
	PredictionRiskLevelHigh     PredictionRiskLevel = "high"
	PredictionRiskLevelLow      PredictionRiskLevel = "low"
	PredictionRiskLevelModerate PredictionRiskLevel = "moderate"
	PredictionRiskLevelVeryHigh PredictionRiskLevel = "very-high"
)

// Defines values for SmokingStatus.
const (
	SmokingStatusCurrent SmokingStatus = "current"
	SmokingStatusFormer  SmokingStatus = "former"
	SmokingStatusNever   SmokingStatus = "never"
)

// AlcoholConsumption defines model for AlcoholConsumption.
type AlcoholConsumption string

// AppointmentStatus defines model for AppointmentStatus.
type AppointmentStatus string

// ComponentInterpretation defines model for ComponentInterpretation.
type ComponentInterpretation string

// PredictionRiskLevel defines model for PredictionRiskLevel.
type PredictionRiskLevel string

// SmokingStatus defines model for SmokingStatus.
type SmokingStatus string

// Id defines model for Id.
type Id = string

// PatientId defines model for PatientId.
type PatientId = string

// Assessment defines model for Assessment.
type Assessment struct {
	AlcoholConsumption AlcoholConsumption `json:"alcoholConsumption"`
	BloodPressure      *BloodPressure     `json:"bloodPressure,omitempty"`
	BloodSugar         *float64           `json:"bloodSugar,omitempty"`
	CreatedTime        time.Time          `json:"createdTime"`
	DoctorId           string             `json:"doctorId"`
	DoctorNotes        *string            `json:"doctorNotes,omitempty"`
	FamilyHistory      FamilyHistory      `json:"familyHistory"`

	// Height Height in centimeters
	Height          *float64       `json:"height,omitempty"`
	Id              Id             `json:"id"`
	PatientId       PatientId      `json:"patientId"`
	Recommendations *string        `json:"recommendations,omitempty"`
	RiskAssessment  RiskAssessment `json:"riskAssessment"`
	SmokingStatus   SmokingStatus  `json:"smokingStatus"`
	Symptoms        *string        `json:"symptoms,omitempty"`
	TestResults     *string        `json:"testResults,omitempty"`

	// Weight Weight in kilograms
	Weight *float64 `json:"weight,omitempty"`
}

// AssessmentCreate defines model for AssessmentCreate.
type AssessmentCreate struct {
	AlcoholConsumption AlcoholConsumption `json:"alcoholConsumption"`
	BloodPressure      *BloodPressure     `json:"bloodPressure,omitempty"`
	BloodSugar         *float64           `json:"bloodSugar,omitempty"`
	DoctorId           string             `json:"doctorId"`
	DoctorNotes        *string            `json:"doctorNotes,omitempty"`
	FamilyHistory      FamilyHistory      `json:"familyHistory"`
	Height             *float64           `json:"height,omitempty"`
	PatientId          PatientId          `json:"patientId"`
	Recommendations    *string            `json:"recommendations,omitempty"`
	SmokingStatus      SmokingStatus      `json:"smokingStatus"`
	Symptoms           *string            `json:"symptoms,omitempty"`
	TestResults        *string            `json:"testResults,omitempty"`
	Weight             *float64           `json:"weight,omitempty"`
}

// Assessments defines model for Assessments.
type Assessments = []Assessment

// BloodPressure defines model for BloodPressure.
type BloodPressure struct {
	Diastolic *float64 `json:"diastolic"`
	Systolic  *float64 `json:"systolic"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Appointments  []DashboardAppointment `json:"appointments"`
	Predictions   []DashboardPrediction  `json:"predictions"`
	RecentMetrics *Metrics               `json:"recentMetrics"`
	RiskFactors   []RiskFactor           `json:"riskFactors"`
	Tests         []TestResult           `json:"tests"`
}

// DashboardAppointment defines model for DashboardAppointment.
type DashboardAppointment struct {
	Date     time.Time         `json:"date"`
	Doctor   Doctor            `json:"doctor"`
	Id       Id                `json:"id"`
	Location string            `json:"location"`
	Reason   string            `json:"reason"`
	Status   AppointmentStatus `json:"status"`
	Type     string            `json:"type"`
}

// DashboardPrediction defines model for DashboardPrediction.
type DashboardPrediction struct {
	Condition   string              `json:"condition"`
	CreatedAt   time.Time           `json:"createdAt"`
	Doctor      Doctor              `json:"doctor"`
	Id          Id                  `json:"id"`
	Probability float64             `json:"probability"`
	RiskLevel   PredictionRiskLevel `json:"riskLevel"`
}

// Doctor defines model for Doctor.
type Doctor struct {
	// Name The display name of the doctor or "Unknown" when the doctor could not be resolved
	Name           string  `json:"name"`
	Specialization *string `json:"specialization,omitempty"`
}

// FamilyHistory defines model for FamilyHistory.
type FamilyHistory struct {
	Cancer       *bool `json:"cancer,omitempty"`
	Diabetes     *bool `json:"diabetes,omitempty"`
	HeartDisease *bool `json:"heartDisease,omitempty"`
	Hypertension *bool `json:"hypertension,omitempty"`
}

// Intake defines model for Intake.
type Intake struct {
	AlcoholConsumption AlcoholConsumption `json:"alcoholConsumption"`
	FamilyHistory      FamilyHistory      `json:"familyHistory"`

	// Height Height in centimeters
	Height        *float64      `json:"height,omitempty"`
	SmokingStatus SmokingStatus `json:"smokingStatus"`

	// Weight Weight in kilograms
	Weight *float64 `json:"weight,omitempty"`
}

// Measurement defines model for Measurement.
type Measurement struct {
	Value *float64 `json:"value"`
}

// Metrics defines model for Metrics.
type Metrics struct {
	BloodPressure BloodPressure `json:"bloodPressure"`
	BloodSugar    Measurement   `json:"bloodSugar"`
	HeartRate     Measurement   `json:"heartRate"`
	RecordedTime  time.Time     `json:"recordedTime"`
	Weight        Measurement   `json:"weight"`
}

// Prediction defines model for Prediction.
type Prediction struct {
	Condition       string                  `json:"condition"`
	CreatedTime     time.Time               `json:"createdTime"`
	DoctorId        *string                 `json:"doctorId,omitempty"`
	Factors         []PredictionFactor      `json:"factors"`
	Id              Id                      `json:"id"`
	ModelMetadata   *map[string]interface{} `json:"modelMetadata,omitempty"`
	PatientId       PatientId               `json:"patientId"`
	Probability     float64                 `json:"probability"`
	Recommendations []string                `json:"recommendations"`
	RiskLevel       PredictionRiskLevel     `json:"riskLevel"`
}

// PredictionCreate defines model for PredictionCreate.
type PredictionCreate struct {
	Condition       string                  `json:"condition"`
	DoctorId        *string                 `json:"doctorId,omitempty"`
	Factors         *[]PredictionFactor     `json:"factors,omitempty"`
	ModelMetadata   *map[string]interface{} `json:"modelMetadata,omitempty"`
	Probability     float64                 `json:"probability"`
	Recommendations *[]string               `json:"recommendations,omitempty"`
	RiskLevel       PredictionRiskLevel     `json:"riskLevel"`
}

// PredictionFactor defines model for PredictionFactor.
type PredictionFactor struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// RiskAssessment defines model for RiskAssessment.
type RiskAssessment struct {
	// Bmi Rounded to one decimal. Null when height or weight is missing.
	Bmi             *float64 `json:"bmi"`
	BmiCategory     *string  `json:"bmiCategory"`
	CancerRiskLevel string   `json:"cancerRiskLevel"`
	RiskFactorCount int      `json:"riskFactorCount"`
}

// RiskFactor defines model for RiskFactor.
type RiskFactor struct {
	Level    float64 `json:"level"`
	Name     string  `json:"name"`
	Severity string  `json:"severity"`
	Source   string  `json:"source"`
}

// TestResult defines model for TestResult.
type TestResult struct {
	Components []TestResultComponent `json:"components"`
	DoctorId   string                `json:"doctorId"`
	Id         Id                    `json:"id"`

	// IsAbnormal True when any component has an interpretation other than normal
	IsAbnormal bool      `json:"isAbnormal"`
	Narrative  *string   `json:"narrative,omitempty"`
	PatientId  PatientId `json:"patientId"`
	ResultDate time.Time `json:"resultDate"`
	TestId     string    `json:"testId"`
	TestName   string    `json:"testName"`
}

// TestResultComponent defines model for TestResultComponent.
type TestResultComponent struct {
	Interpretation *ComponentInterpretation `json:"interpretation,omitempty"`
	Name           string                   `json:"name"`
	ReferenceRange *string                  `json:"referenceRange,omitempty"`
	Unit           *string                  `json:"unit,omitempty"`
	Value          string                   `json:"value"`
}

// TestResultCreate defines model for TestResultCreate.
type TestResultCreate struct {
	Components []TestResultComponent `json:"components"`
	DoctorId   string                `json:"doctorId"`
	Narrative  *string               `json:"narrative,omitempty"`

	// ResultDate Defaults to the current time
	ResultDate *time.Time `json:"resultDate,omitempty"`
	TestId     string     `json:"testId"`
	TestName   string     `json:"testName"`
}

// Vitals defines model for Vitals.
type Vitals struct {
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
	BloodSugar    *float64       `json:"bloodSugar,omitempty"`
	CreatedTime   time.Time      `json:"createdTime"`
	HeartRate     *float64       `json:"heartRate,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	Id            Id             `json:"id"`
	PatientId     PatientId      `json:"patientId"`
	RecordedTime  time.Time      `json:"recordedTime"`
	Type          string         `json:"type"`
	Weight        *float64       `json:"weight,omitempty"`
}

// VitalsCreate defines model for VitalsCreate.
type VitalsCreate struct {
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
	BloodSugar    *float64       `json:"bloodSugar,omitempty"`
	HeartRate     *float64       `json:"heartRate,omitempty"`
	Height        *float64       `json:"height,omitempty"`

	// RecordedTime Defaults to the current time
	RecordedTime *time.Time `json:"recordedTime,omitempty"`

	// Type Defaults to "general"
	Type   *string  `json:"type,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Limit defines model for limit.
type Limit = int

// Offset defines model for offset.
type Offset = int

// ListPatientAssessmentsParams defines parameters for ListPatientAssessments.
type ListPatientAssessmentsParams struct {
	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
	Limit  *Limit  `form:"limit,omitempty" json:"limit,omitempty"`
}

// SubmitAssessmentJSONRequestBody defines body for SubmitAssessment for application/json ContentType.
type SubmitAssessmentJSONRequestBody = AssessmentCreate

// ClassifyIntakeJSONRequestBody defines body for ClassifyIntake for application/json ContentType.
type ClassifyIntakeJSONRequestBody = Intake

// CreatePredictionJSONRequestBody defines body for CreatePrediction for application/json ContentType.
type CreatePredictionJSONRequestBody = PredictionCreate

// CreateTestResultJSONRequestBody defines body for CreateTestResult for application/json ContentType.
type CreateTestResultJSONRequestBody = TestResultCreate

// RecordVitalsJSONRequestBody defines body for RecordVitals for application/json ContentType.
type RecordVitalsJSONRequestBody = VitalsCreate
