package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type PropostaService interface {
	Generate(actor *entity.User, req *contract.GenerateProposalRequest) (*contract.PropostaResponse, apierror.ErrorResponse)
	Upload(actor *entity.User, leadID int64, fileHeader *multipart.FileHeader) (*contract.PropostaResponse, apierror.ErrorResponse)
	ListByLead(actor *entity.User, leadID int64) ([]*contract.PropostaResponse, apierror.ErrorResponse)
	Delete(actor *entity.User, propostaID int64) apierror.ErrorResponse
}

type DefaultPropostaRoute struct {
	PropostaService PropostaService
}

func NewPropostaDefault(propostaService PropostaService) *DefaultPropostaRoute {
	return &DefaultPropostaRoute{PropostaService: propostaService}
}

func (p *DefaultPropostaRoute) GenerateProposta(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.GenerateProposalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	proposta, apierr := p.PropostaService.Generate(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, proposta)
}

func (p *DefaultPropostaRoute) UploadProposta(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	leadID, err := strconv.ParseInt(c.FormValue("leadId"), 10, 64)
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("leadId", "int64"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewSimple(400, "Missing 'file' form field"))
	}

	proposta, apierr := p.PropostaService.Upload(user, leadID, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, proposta)
}

func (p *DefaultPropostaRoute) ListPropostas(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	leadID, err := strconv.ParseInt(c.QueryParam("leadId"), 10, 64)
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("leadId", "int64"))
	}

	propostas, apierr := p.PropostaService.ListByLead(user, leadID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"propostas": propostas}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPropostaRoute) DeleteProposta(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := p.PropostaService.Delete(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
