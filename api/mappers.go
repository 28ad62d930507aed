package api

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellspring-health/clinic/assessments"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/store"
	"github.com/wellspring-health/clinic/testresults"
	"github.com/wellspring-health/clinic/vitals"
)

func NewDashboardDto(d *dashboard.Dashboard) Dashboard {
	return Dashboard{
		RecentMetrics: NewMetricsDto(d.RecentMetrics),
		Predictions: lo.Map(d.Predictions, func(p dashboard.Prediction, _ int) DashboardPrediction {
			return DashboardPrediction{
				Id:          p.Id,
				Condition:   p.Condition,
				RiskLevel:   PredictionRiskLevel(p.RiskLevel),
				Probability: p.Probability,
				CreatedAt:   p.CreatedAt,
				Doctor:      NewDoctorDto(p.Doctor),
			}
		}),
		Appointments: lo.Map(d.Appointments, func(a dashboard.Appointment, _ int) DashboardAppointment {
			return DashboardAppointment{
				Id:       a.Id,
				Date:     a.Date,
				Doctor:   NewDoctorDto(a.Doctor),
				Type:     a.Type,
				Location: a.Location,
				Reason:   a.Reason,
				Status:   AppointmentStatus(a.Status),
			}
		}),
		Tests:       lo.Map(d.Tests, func(t testresults.TestResult, _ int) TestResult { return NewTestResultDto(&t) }),
		RiskFactors: lo.Map(d.RiskFactors, func(f risk.Factor, _ int) RiskFactor { return NewRiskFactorDto(f) }),
	}
}

func NewMetricsDto(m *dashboard.Metrics) *Metrics {
	if m == nil {
		return nil
	}

	return &Metrics{
		BloodPressure: BloodPressure{
			Systolic:  m.BloodPressure.Systolic,
			Diastolic: m.BloodPressure.Diastolic,
		},
		BloodSugar:   Measurement{Value: m.BloodSugar},
		HeartRate:    Measurement{Value: m.HeartRate},
		Weight:       Measurement{Value: m.Weight},
		RecordedTime: m.RecordedTime,
	}
}

func NewDoctorDto(d dashboard.Doctor) Doctor {
	return Doctor{
		Name:           d.Name,
		Specialization: d.Specialization,
	}
}

func NewRiskFactorDto(f risk.Factor) RiskFactor {
	return RiskFactor{
		Name:     f.Name(),
		Severity: string(f.Severity()),
		Level:    f.Level(),
		Source:   string(f.Source()),
	}
}

func NewVitals(patientId string, dto VitalsCreate) *vitals.Vitals {
	v := &vitals.Vitals{
		PatientId:     patientId,
		Type:          vitals.Type(pointer.ToString(dto.Type)),
		Height:        dto.Height,
		Weight:        dto.Weight,
		BloodPressure: NewBloodPressure(dto.BloodPressure),
		HeartRate:     dto.HeartRate,
		BloodSugar:    dto.BloodSugar,
	}
	if dto.RecordedTime != nil {
		v.RecordedTime = *dto.RecordedTime
	}
	return v
}

func NewVitalsDto(v *vitals.Vitals) Vitals {
	return Vitals{
		Id:            idHex(v.Id),
		PatientId:     v.PatientId,
		Type:          string(v.Type),
		RecordedTime:  v.RecordedTime,
		Height:        v.Height,
		Weight:        v.Weight,
		BloodPressure: NewBloodPressureDto(v.BloodPressure),
		HeartRate:     v.HeartRate,
		BloodSugar:    v.BloodSugar,
		CreatedTime:   v.CreatedTime,
	}
}

func NewBloodPressure(dto *BloodPressure) *vitals.BloodPressure {
	if dto == nil {
		return nil
	}
	return &vitals.BloodPressure{
		Systolic:  dto.Systolic,
		Diastolic: dto.Diastolic,
	}
}

func NewBloodPressureDto(bp *vitals.BloodPressure) *BloodPressure {
	if bp == nil {
		return nil
	}
	return &BloodPressure{
		Systolic:  bp.Systolic,
		Diastolic: bp.Diastolic,
	}
}

func NewPrediction(patientId string, dto PredictionCreate) *predictions.Prediction {
	p := &predictions.Prediction{
		PatientId:       patientId,
		DoctorId:        dto.DoctorId,
		Condition:       dto.Condition,
		Probability:     dto.Probability,
		RiskLevel:       predictions.RiskLevel(dto.RiskLevel),
		Recommendations: pointer.Default(dto.Recommendations, []string{}),
	}
	if dto.Factors != nil {
		p.Factors = lo.Map(*dto.Factors, func(f PredictionFactor, _ int) predictions.Factor {
			return predictions.Factor{Name: f.Name, Weight: f.Weight}
		})
	}
	if dto.ModelMetadata != nil {
		p.ModelMetadata = *dto.ModelMetadata
	}
	return p
}

func NewPredictionDto(p *predictions.Prediction) Prediction {
	dto := Prediction{
		Id:          idHex(p.Id),
		PatientId:   p.PatientId,
		DoctorId:    p.DoctorId,
		Condition:   p.Condition,
		Probability: p.Probability,
		RiskLevel:   PredictionRiskLevel(p.RiskLevel),
		Factors: lo.Map(p.Factors, func(f predictions.Factor, _ int) PredictionFactor {
			return PredictionFactor{Name: f.Name, Weight: f.Weight}
		}),
		Recommendations: lo.Ternary(p.Recommendations != nil, p.Recommendations, []string{}),
		CreatedTime:     p.CreatedTime,
	}
	if len(p.ModelMetadata) > 0 {
		metadata := map[string]interface{}(p.ModelMetadata)
		dto.ModelMetadata = &metadata
	}
	return dto
}

func NewTestResult(patientId string, dto TestResultCreate) *testresults.TestResult {
	t := &testresults.TestResult{
		PatientId: patientId,
		DoctorId:  dto.DoctorId,
		TestId:    dto.TestId,
		TestName:  dto.TestName,
		Narrative: pointer.ToString(dto.Narrative),
		Components: lo.Map(dto.Components, func(c TestResultComponent, _ int) testresults.Component {
			return testresults.Component{
				Name:           c.Name,
				Value:          c.Value,
				Unit:           pointer.ToString(c.Unit),
				ReferenceRange: pointer.ToString(c.ReferenceRange),
				Interpretation: testresults.Interpretation(pointer.Default(c.Interpretation, "")),
			}
		}),
	}
	if dto.ResultDate != nil {
		t.ResultDate = *dto.ResultDate
	}
	return t
}

func NewTestResultDto(t *testresults.TestResult) TestResult {
	return TestResult{
		Id:         idHex(t.Id),
		PatientId:  t.PatientId,
		DoctorId:   t.DoctorId,
		TestId:     t.TestId,
		TestName:   t.TestName,
		Narrative:  optionalString(t.Narrative),
		IsAbnormal: t.IsAbnormal,
		ResultDate: t.ResultDate,
		Components: lo.Map(t.Components, func(c testresults.Component, _ int) TestResultComponent {
			component := TestResultComponent{
				Name:           c.Name,
				Value:          c.Value,
				Unit:           optionalString(c.Unit),
				ReferenceRange: optionalString(c.ReferenceRange),
			}
			if c.Interpretation != "" {
				component.Interpretation = pointer.FromAny(ComponentInterpretation(c.Interpretation))
			}
			return component
		}),
	}
}

func NewIntake(dto Intake) (assessments.Intake, error) {
	smoking, err := assessments.ParseSmokingStatus(string(dto.SmokingStatus))
	if err != nil {
		return assessments.Intake{}, err
	}
	alcohol, err := assessments.ParseAlcoholConsumption(string(dto.AlcoholConsumption))
	if err != nil {
		return assessments.Intake{}, err
	}

	return assessments.Intake{
		Height:             dto.Height,
		Weight:             dto.Weight,
		SmokingStatus:      smoking,
		AlcoholConsumption: alcohol,
		FamilyHistory:      NewFamilyHistory(dto.FamilyHistory),
	}, nil
}

func NewAssessment(dto AssessmentCreate) (*assessments.Assessment, error) {
	intake, err := NewIntake(Intake{
		Height:             dto.Height,
		Weight:             dto.Weight,
		SmokingStatus:      dto.SmokingStatus,
		AlcoholConsumption: dto.AlcoholConsumption,
		FamilyHistory:      dto.FamilyHistory,
	})
	if err != nil {
		return nil, err
	}

	return &assessments.Assessment{
		PatientId: dto.PatientId,
		DoctorId:  dto.DoctorId,
		Measurements: assessments.Measurements{
			Height:        intake.Height,
			Weight:        intake.Weight,
			BloodPressure: NewBloodPressure(dto.BloodPressure),
			BloodSugar:    dto.BloodSugar,
		},
		SmokingStatus:      intake.SmokingStatus,
		AlcoholConsumption: intake.AlcoholConsumption,
		FamilyHistory:      intake.FamilyHistory,
		Symptoms:           pointer.ToString(dto.Symptoms),
		TestResults:        pointer.ToString(dto.TestResults),
		DoctorNotes:        pointer.ToString(dto.DoctorNotes),
		Recommendations:    pointer.ToString(dto.Recommendations),
	}, nil
}

func NewAssessmentDto(a *assessments.Assessment) Assessment {
	return Assessment{
		Id:                 a.IdHex(),
		PatientId:          a.PatientId,
		DoctorId:           a.DoctorId,
		Height:             a.Measurements.Height,
		Weight:             a.Measurements.Weight,
		BloodPressure:      NewBloodPressureDto(a.Measurements.BloodPressure),
		BloodSugar:         a.Measurements.BloodSugar,
		SmokingStatus:      SmokingStatus(a.SmokingStatus),
		AlcoholConsumption: AlcoholConsumption(a.AlcoholConsumption),
		FamilyHistory:      NewFamilyHistoryDto(a.FamilyHistory),
		Symptoms:           optionalString(a.Symptoms),
		TestResults:        optionalString(a.TestResults),
		DoctorNotes:        optionalString(a.DoctorNotes),
		Recommendations:    optionalString(a.Recommendations),
		RiskAssessment:     NewRiskAssessmentDto(a.RiskAssessment),
		CreatedTime:        a.CreatedTime,
	}
}

func NewAssessmentsDto(list []assessments.Assessment) Assessments {
	return lo.Map(list, func(a assessments.Assessment, _ int) Assessment {
		return NewAssessmentDto(&a)
	})
}

func NewRiskAssessmentDto(r assessments.RiskAssessment) RiskAssessment {
	dto := RiskAssessment{
		Bmi:             r.BMI,
		RiskFactorCount: r.RiskFactorCount,
		CancerRiskLevel: string(r.CancerRiskLevel),
	}
	if r.BMICategory != nil {
		dto.BmiCategory = pointer.FromAny(string(*r.BMICategory))
	}
	return dto
}

func NewFamilyHistory(dto FamilyHistory) assessments.FamilyHistory {
	return assessments.FamilyHistory{
		Cancer:       pointer.Default(dto.Cancer, false),
		Diabetes:     pointer.Default(dto.Diabetes, false),
		HeartDisease: pointer.Default(dto.HeartDisease, false),
		Hypertension: pointer.Default(dto.Hypertension, false),
	}
}

func NewFamilyHistoryDto(f assessments.FamilyHistory) FamilyHistory {
	return FamilyHistory{
		Cancer:       pointer.FromAny(f.Cancer),
		Diabetes:     pointer.FromAny(f.Diabetes),
		HeartDisease: pointer.FromAny(f.HeartDisease),
		Hypertension: pointer.FromAny(f.Hypertension),
	}
}

func pagination(offset *Offset, limit *Limit) store.Pagination {
	page := store.DefaultPagination()
	if offset != nil {
		page.Offset = *offset
	}
	if limit != nil {
		page.Limit = *limit
	}
	return page
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func idHex(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}
