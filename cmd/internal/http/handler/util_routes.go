package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/utils/apierror"
)

// parseIDParam reads the snowflake path parameter, reporting a typed
// 400 on garbage input.
func parseIDParam(c echo.Context, name string) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.NewInvalidParamTypeError(name, "int64")
	}
	return id, nil
}

type DefaultUtilRoute struct{}

func NewUtilDefault() *DefaultUtilRoute {
	return &DefaultUtilRoute{}
}

func (u *DefaultUtilRoute) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
