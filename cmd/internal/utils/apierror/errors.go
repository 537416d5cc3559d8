package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")
	UnauthorizedError   = NewSimple(401, "Missing or invalid credentials")

	// NotFoundError is returned both when a record does not exist and
	// when it exists but belongs to another tenant. The two cases are
	// deliberately indistinguishable to the caller.
	NotFoundError = NewSimple(404, "Resource not found or access denied")

	InvalidIDError        = NewSimple(400, "The provided ID is invalid")
	InvalidCNPJError      = NewSimple(400, "CNPJ must have exactly 14 digits")
	InvalidStatusError    = NewSimple(400, "Invalid lead status")
	ConfigNotFoundError   = NewSimple(404, "Company settings not found for this user")
	EmailTakenError       = NewSimple(409, "This e-mail is already in use")
	AdminOnlyError        = NewSimple(403, "Only administrators can register new users")
	CredentialsError      = NewSimple(400, "Credentials mismatch")
	RegistryFailedError   = NewSimple(500, "Registry lookup failed")
	UnsupportedMediaError = NewSimple(415, "Unsupported media type")
)

// NewRegistryError surfaces the upstream registry status code to the
// caller, keeping the upstream detail in the message.
func NewRegistryError(status int, detail string) *APIError {
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	msg := fmt.Sprintf("Registry lookup failed with status %d", status)
	if detail != "" {
		msg += ": " + detail
	}
	return NewSimple(status, msg)
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "cnpj":
			problems[field] = append(problems[field], "Value must be a valid CNPJ")
		case "strongpwd":
			problems[field] = append(problems[field], "Password must mix upper, lower, digit and special characters")
		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
