package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("strongpwd", StrongPassword))
	require.NoError(t, v.RegisterValidation("cnpj", CNPJ))
	return v
}

func TestStrongPassword(t *testing.T) {
	v := newValidate(t)
	type payload struct {
		Password string `validate:"strongpwd"`
	}

	ok := []string{
		"Sup3r$ecret!",
		"Abcdef1!",
		"P@ssw0rdP@ssw0rd",
	}
	for _, pwd := range ok {
		assert.NoError(t, v.Struct(payload{Password: pwd}), pwd)
	}

	bad := []string{
		"short1!",          // below minimum length
		"alllowercase1!",   // no upper
		"ALLUPPERCASE1!",   // no lower
		"NoDigitsHere!",    // no digit
		"NoSpecialChars12", // no special
	}
	for _, pwd := range bad {
		assert.Error(t, v.Struct(payload{Password: pwd}), pwd)
	}
}

func TestCNPJ(t *testing.T) {
	v := newValidate(t)
	type payload struct {
		Cnpj string `validate:"cnpj"`
	}

	assert.NoError(t, v.Struct(payload{Cnpj: "11222333000181"}))
	// The display mask is accepted; validation strips it first.
	assert.NoError(t, v.Struct(payload{Cnpj: "11.222.333/0001-81"}))

	assert.Error(t, v.Struct(payload{Cnpj: "11222333000199"}))
	assert.Error(t, v.Struct(payload{Cnpj: "11111111111111"}))
	assert.Error(t, v.Struct(payload{Cnpj: "123"}))
}
