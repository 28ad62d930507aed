package api

import (
	"go.uber.org/fx"

	"github.com/wellspring-health/clinic/assessments"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/testresults"
	"github.com/wellspring-health/clinic/vitals"
)

type Handler struct {
	dashboards  dashboard.Service
	assessments assessments.Service
	vitals      vitals.Service
	predictions predictions.Service
	testResults testresults.Service
}

var _ ServerInterface = &Handler{}

type Params struct {
	fx.In

	Dashboards  dashboard.Service
	Assessments assessments.Service
	Vitals      vitals.Service
	Predictions predictions.Service
	TestResults testresults.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		dashboards:  p.Dashboards,
		assessments: p.Assessments,
		vitals:      p.Vitals,
		predictions: p.Predictions,
		testResults: p.TestResults,
	}
}
