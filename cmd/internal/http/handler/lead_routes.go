package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/service"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type LeadService interface {
	Search(actor *entity.User, search, status, sortBy, sortOrder string, page int) (*contract.LeadSearchResponse, apierror.ErrorResponse)
	Create(actor *entity.User, req *contract.CreateLeadRequest) (*contract.LeadResponse, apierror.ErrorResponse)
	GetDetailed(actor *entity.User, leadID int64) (*contract.LeadDetailResponse, apierror.ErrorResponse)
	Import(actor *entity.User, req *contract.ImportLeadsRequest) (*contract.ImportLeadsResponse, apierror.ErrorResponse)
	Export(actor *entity.User) ([]byte, apierror.ErrorResponse)
	Locations(actor *entity.User) ([]*contract.LocationResponse, apierror.ErrorResponse)
}

type EnrichmentService interface {
	Enrich(ctx context.Context, actor *entity.User, leadID int64) (*contract.VerifyLeadResponse, apierror.ErrorResponse)
}

type DefaultLeadRoute struct {
	LeadService LeadService
	Enrichment  EnrichmentService
}

func NewLeadDefault(leadService LeadService, enrichment EnrichmentService) *DefaultLeadRoute {
	return &DefaultLeadRoute{
		LeadService: leadService,
		Enrichment:  enrichment,
	}
}

func (l *DefaultLeadRoute) SearchLeads(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	resp, apierr := l.LeadService.Search(
		user,
		c.QueryParam("search"),
		c.QueryParam("status"),
		c.QueryParam("sortBy"),
		c.QueryParam("sortOrder"),
		page,
	)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (l *DefaultLeadRoute) CreateLead(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	lead, apierr := l.LeadService.Create(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, lead)
}

func (l *DefaultLeadRoute) GetLead(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	lead, apierr := l.LeadService.GetDetailed(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, lead)
}

func (l *DefaultLeadRoute) VerifyLead(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	resp, apierr := l.Enrichment.Enrich(c.Request().Context(), user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (l *DefaultLeadRoute) ImportLeads(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ImportLeadsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := l.LeadService.Import(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (l *DefaultLeadRoute) ExportLeads(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	workbook, apierr := l.LeadService.Export(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+service.ExportFilename()+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (l *DefaultLeadRoute) GetLocations(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	locations, apierr := l.LeadService.Locations(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"locations": locations}
	return c.JSON(http.StatusOK, &resp)
}
