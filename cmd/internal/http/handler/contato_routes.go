package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type ContatoService interface {
	Create(actor *entity.User, req *contract.CreateContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse)
	Update(actor *entity.User, contatoID int64, req *contract.UpdateContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse)
	Delete(actor *entity.User, contatoID int64) apierror.ErrorResponse
}

type DefaultContatoRoute struct {
	ContatoService ContatoService
}

func NewContatoDefault(contatoService ContatoService) *DefaultContatoRoute {
	return &DefaultContatoRoute{ContatoService: contatoService}
}

func (ct *DefaultContatoRoute) CreateContato(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateContatoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	contato, apierr := ct.ContatoService.Create(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, contato)
}

func (ct *DefaultContatoRoute) UpdateContato(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateContatoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	contato, apierr := ct.ContatoService.Update(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contato)
}

func (ct *DefaultContatoRoute) DeleteContato(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := ct.ContatoService.Delete(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
