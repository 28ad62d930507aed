package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellspring-health/clinic/errors"
)

func (h *Handler) SubmitAssessment(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := AssessmentCreate{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: unable to parse assessment: %w", errors.BadRequest, err)
	}

	create, err := NewAssessment(dto)
	if err != nil {
		return err
	}

	result, err := h.assessments.Submit(ctx, create)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewAssessmentDto(result))
}

func (h *Handler) ClassifyIntake(ec echo.Context) error {
	dto := Intake{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: unable to parse intake: %w", errors.BadRequest, err)
	}

	intake, err := NewIntake(dto)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewRiskAssessmentDto(h.assessments.Classify(intake)))
}

func (h *Handler) GetAssessment(ec echo.Context, assessmentId Id) error {
	ctx := ec.Request().Context()
	result, err := h.assessments.Get(ctx, assessmentId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewAssessmentDto(result))
}

func (h *Handler) ListPatientAssessments(ec echo.Context, patientId PatientId, params ListPatientAssessmentsParams) error {
	ctx := ec.Request().Context()
	list, err := h.assessments.ListByPatient(ctx, patientId, pagination(params.Offset, params.Limit))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewAssessmentsDto(list))
}
