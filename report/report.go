package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/wellspring-health/clinic/dashboard"
)

const (
	SheetNameSummary      = "Summary"
	SheetNameRiskFactors  = "Risk Factors"
	SheetNamePredictions  = "Predictions"
	SheetNameAppointments = "Appointments"
	SheetNameTestResults  = "Test Results"

	TimeFormat = time.RFC3339
)

// Report is a spreadsheet export of a patient's dashboard
type Report struct {
	patientId   string
	dashboard   dashboard.Dashboard
	generatedAt time.Time
}

func NewReport(patientId string, d dashboard.Dashboard, generatedAt time.Time) Report {
	return Report{
		patientId:   patientId,
		dashboard:   d,
		generatedAt: generatedAt,
	}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addRiskFactorsSheet,
		r.addPredictionsSheet,
		r.addAppointmentsSheet,
		r.addTestResultsSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameSummary)
	if err != nil {
		return err
	}

	addRow(sh, "Patient", r.patientId)
	addRow(sh, "Generated", r.generatedAt.UTC().Format(TimeFormat))

	metrics := r.dashboard.RecentMetrics
	if metrics == nil {
		addRow(sh, "Recent Metrics", "No vitals recorded")
		return nil
	}

	addRow(sh, "Recent Metrics", metrics.RecordedTime.UTC().Format(TimeFormat))
	addRow(sh, "Systolic", formatOptional(metrics.BloodPressure.Systolic))
	addRow(sh, "Diastolic", formatOptional(metrics.BloodPressure.Diastolic))
	addRow(sh, "Heart Rate", formatOptional(metrics.HeartRate))
	addRow(sh, "Blood Sugar", formatOptional(metrics.BloodSugar))
	addRow(sh, "Weight", formatOptional(metrics.Weight))
	return nil
}

func (r Report) addRiskFactorsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameRiskFactors)
	if err != nil {
		return err
	}

	addRow(sh, "Name", "Severity", "Level", "Source")
	for _, f := range r.dashboard.RiskFactors {
		addRow(sh, f.Name(), string(f.Severity()), formatFloat(f.Level()), string(f.Source()))
	}
	return nil
}

func (r Report) addPredictionsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNamePredictions)
	if err != nil {
		return err
	}

	addRow(sh, "Condition", "Risk Level", "Probability", "Created", "Doctor")
	for _, p := range r.dashboard.Predictions {
		addRow(sh, p.Condition, string(p.RiskLevel), formatFloat(p.Probability), p.CreatedAt.UTC().Format(TimeFormat), p.Doctor.Name)
	}
	return nil
}

func (r Report) addAppointmentsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameAppointments)
	if err != nil {
		return err
	}

	addRow(sh, "Date", "Doctor", "Specialization", "Type", "Location", "Reason", "Status")
	for _, a := range r.dashboard.Appointments {
		specialization := ""
		if a.Doctor.Specialization != nil {
			specialization = *a.Doctor.Specialization
		}
		addRow(sh, a.Date.UTC().Format(TimeFormat), a.Doctor.Name, specialization, a.Type, a.Location, a.Reason, string(a.Status))
	}
	return nil
}

func (r Report) addTestResultsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameTestResults)
	if err != nil {
		return err
	}

	addRow(sh, "Date", "Test", "Abnormal", "Components")
	for _, t := range r.dashboard.Tests {
		components := make([]string, 0, len(t.Components))
		for _, c := range t.Components {
			components = append(components, strings.TrimSpace(c.Name+" "+c.Value+" "+c.Unit))
		}
		addRow(sh, t.ResultDate.UTC().Format(TimeFormat), t.TestName, strconv.FormatBool(t.IsAbnormal), strings.Join(components, ", "))
	}
	return nil
}

func addRow(sh *xlsx.Sheet, values ...string) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
