package api

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Submit an intake assessment
	// (POST /v1/assessments)
	SubmitAssessment(ctx echo.Context) error
	// Classify an intake without storing it
	// (POST /v1/assessments/classify)
	ClassifyIntake(ctx echo.Context) error
	// Get an assessment
	// (GET /v1/assessments/{assessmentId})
	GetAssessment(ctx echo.Context, assessmentId Id) error
	// Get the dashboard of the authenticated patient
	// (GET /v1/patients/me/dashboard)
	GetMyDashboard(ctx echo.Context) error
	// List the assessments of a patient, newest first
	// (GET /v1/patients/{patientId}/assessments)
	ListPatientAssessments(ctx echo.Context, patientId PatientId, params ListPatientAssessmentsParams) error
	// Get the dashboard of a patient
	// (GET /v1/patients/{patientId}/dashboard)
	GetPatientDashboard(ctx echo.Context, patientId PatientId) error
	// Record a risk prediction
	// (POST /v1/patients/{patientId}/predictions)
	CreatePrediction(ctx echo.Context, patientId PatientId) error
	// Record a test result
	// (POST /v1/patients/{patientId}/test_results)
	CreateTestResult(ctx echo.Context, patientId PatientId) error
	// Record a vitals snapshot
	// (POST /v1/patients/{patientId}/vitals)
	RecordVitals(ctx echo.Context, patientId PatientId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// SubmitAssessment converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitAssessment(ctx echo.Context) error {
	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.SubmitAssessment(ctx)
}

// ClassifyIntake converts echo context to params.
func (w *ServerInterfaceWrapper) ClassifyIntake(ctx echo.Context) error {
	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.ClassifyIntake(ctx)
}

// GetAssessment converts echo context to params.
func (w *ServerInterfaceWrapper) GetAssessment(ctx echo.Context) error {
	var assessmentId Id
	err := runtime.BindStyledParameterWithLocation("simple", false, "assessmentId", runtime.ParamLocationPath, ctx.Param("assessmentId"), &assessmentId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter assessmentId: %s", err))
	}

	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.GetAssessment(ctx, assessmentId)
}

// GetMyDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyDashboard(ctx echo.Context) error {
	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.GetMyDashboard(ctx)
}

// ListPatientAssessments converts echo context to params.
func (w *ServerInterfaceWrapper) ListPatientAssessments(ctx echo.Context) error {
	patientId, err := bindPatientId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(SessionTokenScopes, []string{})

	var params ListPatientAssessmentsParams
	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListPatientAssessments(ctx, patientId, params)
}

// GetPatientDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetPatientDashboard(ctx echo.Context) error {
	patientId, err := bindPatientId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.GetPatientDashboard(ctx, patientId)
}

// CreatePrediction converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePrediction(ctx echo.Context) error {
	patientId, err := bindPatientId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.CreatePrediction(ctx, patientId)
}

// CreateTestResult converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTestResult(ctx echo.Context) error {
	patientId, err := bindPatientId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.CreateTestResult(ctx, patientId)
}

// RecordVitals converts echo context to params.
func (w *ServerInterfaceWrapper) RecordVitals(ctx echo.Context) error {
	patientId, err := bindPatientId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(SessionTokenScopes, []string{})
	return w.Handler.RecordVitals(ctx, patientId)
}

func bindPatientId(ctx echo.Context) (PatientId, error) {
	var patientId PatientId
	err := runtime.BindStyledParameterWithLocation("simple", false, "patientId", runtime.ParamLocationPath, ctx.Param("patientId"), &patientId)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter patientId: %s", err))
	}
	return patientId, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/v1/assessments", wrapper.SubmitAssessment)
	router.POST(baseURL+"/v1/assessments/classify", wrapper.ClassifyIntake)
	router.GET(baseURL+"/v1/assessments/:assessmentId", wrapper.GetAssessment)
	router.GET(baseURL+"/v1/patients/me/dashboard", wrapper.GetMyDashboard)
	router.GET(baseURL+"/v1/patients/:patientId/assessments", wrapper.ListPatientAssessments)
	router.GET(baseURL+"/v1/patients/:patientId/dashboard", wrapper.GetPatientDashboard)
	router.POST(baseURL+"/v1/patients/:patientId/predictions", wrapper.CreatePrediction)
	router.POST(baseURL+"/v1/patients/:patientId/test_results", wrapper.CreateTestResult)
	router.POST(baseURL+"/v1/patients/:patientId/vitals", wrapper.RecordVitals)
}

//go:embed clinic.v1.yaml
var openAPIDocument []byte

// GetSwagger returns the OpenAPI document embedded in the binary
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return swagger, nil
}
