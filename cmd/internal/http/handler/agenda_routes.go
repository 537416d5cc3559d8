package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type AgendaService interface {
	AddAtividade(actor *entity.User, req *contract.CreateAtividadeRequest) (*contract.AtividadeResponse, apierror.ErrorResponse)
	AddLembrete(actor *entity.User, req *contract.CreateLembreteRequest) (*contract.LembreteResponse, apierror.ErrorResponse)
	UpdateLembrete(actor *entity.User, lembreteID int64, req *contract.UpdateLembreteRequest) (*contract.LembreteResponse, apierror.ErrorResponse)
	DeleteLembrete(actor *entity.User, lembreteID int64) apierror.ErrorResponse
	Upcoming(actor *entity.User) ([]*contract.UpcomingLembreteResponse, apierror.ErrorResponse)
}

type DefaultAgendaRoute struct {
	AgendaService AgendaService
}

func NewAgendaDefault(agendaService AgendaService) *DefaultAgendaRoute {
	return &DefaultAgendaRoute{AgendaService: agendaService}
}

func (a *DefaultAgendaRoute) CreateAtividade(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateAtividadeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	atividade, apierr := a.AgendaService.AddAtividade(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, atividade)
}

func (a *DefaultAgendaRoute) CreateLembrete(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateLembreteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	lembrete, apierr := a.AgendaService.AddLembrete(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, lembrete)
}

func (a *DefaultAgendaRoute) UpdateLembrete(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateLembreteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	lembrete, apierr := a.AgendaService.UpdateLembrete(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, lembrete)
}

func (a *DefaultAgendaRoute) DeleteLembrete(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := a.AgendaService.DeleteLembrete(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAgendaRoute) UpcomingLembretes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	upcoming, apierr := a.AgendaService.Upcoming(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"lembretes": upcoming}
	return c.JSON(http.StatusOK, &resp)
}
