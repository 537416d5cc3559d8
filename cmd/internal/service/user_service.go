package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Count() (int64, error)
	Save(user *entity.User) error
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *DefaultUserService {
	return &DefaultUserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// Register creates a new account. The very first registered user becomes
// ADMIN with no actor required; every later registration must be
// performed by an ADMIN.
func (u *DefaultUserService) Register(actor *entity.User, req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	count, err := u.UserRepo.Count()
	if err != nil {
		log.Errorf("failed to count users: %v", err)
		return nil, apierror.InternalServerError
	}

	role := entity.RoleUser
	if count == 0 {
		role = entity.RoleAdmin
	} else {
		if actor == nil {
			return nil, apierror.UnauthorizedError
		}
		if !actor.IsAdmin() {
			return nil, apierror.AdminOnlyError
		}
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check email uniqueness: %v", err)
		return nil, apierror.InternalServerError
	}
	if exists {
		return nil, apierror.EmailTakenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:           uid.Generate(),
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

// Login verifies the credentials locally and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *DefaultUserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.CredentialsError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.CredentialsError
	}

	token, err := utils.IssueToken(user.ID, user.Email)
	if err != nil {
		log.Errorf("failed to issue token: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.UserLoginResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	}, nil
}
