package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type UserService interface {
	Register(actor *entity.User, req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse)
	Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse)
}

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
}

type DefaultUserRoute struct {
	UserService UserService
	UserRepo    UserRepository
}

func NewUserDefault(userService UserService, userRepo UserRepository) *DefaultUserRoute {
	return &DefaultUserRoute{
		UserService: userService,
		UserRepo:    userRepo,
	}
}

// Register stays outside the auth middleware so the very first account
// can be created on a fresh install. The actor is resolved from the
// token when one is present.
func (u *DefaultUserRoute) Register(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	actor := u.optionalActor(c)
	resp, apierr := u.UserService.Register(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (u *DefaultUserRoute) Login(c echo.Context) error {
	var req contract.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) Me(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	return c.JSON(http.StatusOK, &contract.UserResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	})
}

func (u *DefaultUserRoute) optionalActor(c echo.Context) *entity.User {
	tokenData, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return nil
	}

	user, err := u.UserRepo.FindByID(tokenData.UserID)
	if err != nil {
		return nil
	}
	return user
}
