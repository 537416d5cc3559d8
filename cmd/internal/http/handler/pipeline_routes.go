package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type PipelineService interface {
	SetStatus(actor *entity.User, leadID int64, req *contract.UpdateLeadStatusRequest) (*contract.LeadResponse, apierror.ErrorResponse)
	EnsureNegocioResponse(actor *entity.User, leadID int64) (*contract.NegocioResponse, apierror.ErrorResponse)
	UpdateNegocio(actor *entity.User, negocioID int64, req *contract.UpdateNegocioRequest) (*contract.NegocioResponse, apierror.ErrorResponse)
}

type DefaultPipelineRoute struct {
	Pipeline PipelineService
}

func NewPipelineDefault(pipeline PipelineService) *DefaultPipelineRoute {
	return &DefaultPipelineRoute{Pipeline: pipeline}
}

func (p *DefaultPipelineRoute) UpdateLeadStatus(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	lead, apierr := p.Pipeline.SetStatus(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, lead)
}

func (p *DefaultPipelineRoute) EnsureNegocio(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	negocio, apierr := p.Pipeline.EnsureNegocioResponse(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, negocio)
}

func (p *DefaultPipelineRoute) UpdateNegocio(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateNegocioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	negocio, apierr := p.Pipeline.UpdateNegocio(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, negocio)
}
