package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type ConfigService interface {
	Get(actor *entity.User) (*contract.ConfigResponse, apierror.ErrorResponse)
	Update(actor *entity.User, req *contract.UpdateConfigRequest) (*contract.ConfigResponse, apierror.ErrorResponse)
	UploadLogo(actor *entity.User, fileHeader *multipart.FileHeader) (*contract.ConfigResponse, apierror.ErrorResponse)
}

type DefaultConfigRoute struct {
	ConfigService ConfigService
}

func NewConfigDefault(configService ConfigService) *DefaultConfigRoute {
	return &DefaultConfigRoute{ConfigService: configService}
}

func (cf *DefaultConfigRoute) GetConfig(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	config, apierr := cf.ConfigService.Get(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, config)
}

func (cf *DefaultConfigRoute) UpdateConfig(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	config, apierr := cf.ConfigService.Update(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, config)
}

func (cf *DefaultConfigRoute) UploadLogo(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewSimple(400, "Missing 'file' form field"))
	}

	config, apierr := cf.ConfigService.UploadLogo(user, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, config)
}
