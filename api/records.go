package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellspring-health/clinic/errors"
)

func (h *Handler) RecordVitals(ec echo.Context, patientId PatientId) error {
	ctx := ec.Request().Context()
	dto := VitalsCreate{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: unable to parse vitals: %w", errors.BadRequest, err)
	}

	result, err := h.vitals.Record(ctx, NewVitals(patientId, dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewVitalsDto(result))
}

func (h *Handler) CreatePrediction(ec echo.Context, patientId PatientId) error {
	ctx := ec.Request().Context()
	dto := PredictionCreate{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: unable to parse prediction: %w", errors.BadRequest, err)
	}

	result, err := h.predictions.Create(ctx, NewPrediction(patientId, dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPredictionDto(result))
}

func (h *Handler) CreateTestResult(ec echo.Context, patientId PatientId) error {
	ctx := ec.Request().Context()
	dto := TestResultCreate{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: unable to parse test result: %w", errors.BadRequest, err)
	}

	result, err := h.testResults.Create(ctx, NewTestResult(patientId, dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewTestResultDto(result))
}
