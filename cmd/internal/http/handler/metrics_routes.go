package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type MetricsService interface {
	GetMetrics(actor *entity.User, startDate, endDate string) (*contract.MetricsResponse, apierror.ErrorResponse)
}

type DefaultMetricsRoute struct {
	MetricsService MetricsService
}

func NewMetricsDefault(metricsService MetricsService) *DefaultMetricsRoute {
	return &DefaultMetricsRoute{MetricsService: metricsService}
}

func (m *DefaultMetricsRoute) GetMetrics(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	metrics, apierr := m.MetricsService.GetMetrics(user,
		c.QueryParam("startDate"), c.QueryParam("endDate"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, metrics)
}
