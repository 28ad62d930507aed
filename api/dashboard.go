package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellspring-health/clinic/auth"
	"github.com/wellspring-health/clinic/errors"
)

func (h *Handler) GetMyDashboard(ec echo.Context) error {
	authData := auth.GetAuthData(ec.Request().Context())
	if authData == nil {
		return fmt.Errorf("%w: session is required", errors.Unauthorized)
	}
	if !authData.IsPatient(authData.SubjectId) {
		return fmt.Errorf("%w: only patients have a dashboard", errors.Forbidden)
	}

	return h.getDashboard(ec, authData.SubjectId)
}

func (h *Handler) GetPatientDashboard(ec echo.Context, patientId PatientId) error {
	return h.getDashboard(ec, patientId)
}

func (h *Handler) getDashboard(ec echo.Context, patientId string) error {
	ctx := ec.Request().Context()
	d, err := h.dashboards.Get(ctx, patientId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewDashboardDto(d))
}
