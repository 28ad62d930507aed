package report_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tealeg/xlsx/v3"

	"github.com/wellspring-health/clinic/appointments"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/report"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/testresults"
	"github.com/wellspring-health/clinic/vitals"
)

const (
	summarySheetIdx      = 0
	riskFactorsSheetIdx  = 1
	predictionsSheetIdx  = 2
	appointmentsSheetIdx = 3
	testResultsSheetIdx  = 4
)

func toSlice(f *xlsx.File) [][][]string {
	m, err := f.ToSlice()
	Expect(err).To(Succeed())
	return m
}

var _ = Describe("Report", func() {
	generatedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	It("exports every section of the dashboard", func() {
		deriver := risk.NewDeriver(risk.DefaultThresholds())
		v := &vitals.Vitals{
			RecordedTime:  generatedAt.Add(-time.Hour),
			BloodPressure: &vitals.BloodPressure{Systolic: pointer.FromAny(170.0), Diastolic: pointer.FromAny(85.0)},
			HeartRate:     pointer.FromAny(72.0),
		}
		d := dashboard.Dashboard{
			RecentMetrics: dashboard.NewMetrics(v),
			Predictions: []dashboard.Prediction{{
				Condition:   "Hypertension",
				RiskLevel:   predictions.RiskLevelHigh,
				Probability: 0.82,
				CreatedAt:   generatedAt.Add(-24 * time.Hour),
				Doctor:      dashboard.Doctor{Name: "Dr. Grey"},
			}},
			Appointments: []dashboard.Appointment{{
				Date:     generatedAt.Add(48 * time.Hour),
				Doctor:   dashboard.Doctor{Name: "Dr. Grey", Specialization: pointer.FromAny("Cardiology")},
				Type:     "Follow-up",
				Location: "Room 4",
				Reason:   "Blood pressure review",
				Status:   appointments.StatusConfirmed,
			}},
			Tests: []testresults.TestResult{{
				TestName:   "Lipid Panel",
				IsAbnormal: true,
				ResultDate: generatedAt.Add(-72 * time.Hour),
				Components: []testresults.Component{{Name: "LDL", Value: "190", Unit: "mg/dL", Interpretation: testresults.InterpretationHigh}},
			}},
			RiskFactors: deriver.FromVitals(v),
		}

		f, err := report.NewReport("patient-1", d, generatedAt).Generate()
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Sheets).To(HaveLen(5))

		m := toSlice(f)
		Expect(m[summarySheetIdx][0]).To(Equal([]string{"Patient", "patient-1"}))
		Expect(m[summarySheetIdx][1]).To(Equal([]string{"Generated", "2024-06-01T08:00:00Z"}))
		Expect(m[summarySheetIdx][3]).To(Equal([]string{"Systolic", "170"}))

		Expect(m[riskFactorsSheetIdx][1]).To(Equal([]string{"Blood Pressure", "High", "0.625", "vitals"}))
		Expect(m[predictionsSheetIdx][1]).To(Equal([]string{"Hypertension", "high", "0.82", "2024-05-31T08:00:00Z", "Dr. Grey"}))
		Expect(m[appointmentsSheetIdx][1]).To(Equal([]string{"2024-06-03T08:00:00Z", "Dr. Grey", "Cardiology", "Follow-up", "Room 4", "Blood pressure review", "confirmed"}))
		Expect(m[testResultsSheetIdx][1]).To(Equal([]string{"2024-05-29T08:00:00Z", "Lipid Panel", "true", "LDL 190 mg/dL"}))
	})

	It("notes missing vitals", func() {
		f, err := report.NewReport("patient-2", dashboard.Dashboard{}, generatedAt).Generate()
		Expect(err).ToNot(HaveOccurred())

		m := toSlice(f)
		Expect(m[summarySheetIdx][2]).To(Equal([]string{"Recent Metrics", "No vitals recorded"}))
		Expect(m[riskFactorsSheetIdx]).To(HaveLen(1))
	})
})
