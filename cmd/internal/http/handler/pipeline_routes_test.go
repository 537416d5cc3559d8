package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/database"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/service"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/uid"
	"prospecta/cmd/internal/validators"
)

func newPipelineRoute(t *testing.T) (*DefaultPipelineRoute, *gorm.DB) {
	t.Helper()
	uid.Init(1)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("strongpwd", validators.StrongPassword))
	require.NoError(t, validate.RegisterValidation("cnpj", validators.CNPJ))

	svc := service.NewPipelineService(
		db,
		policy.NewOwnershipGuard(),
		repository.NewLeadRepository(db),
		repository.NewNegocioRepository(db),
		validate,
	)
	return NewPipelineDefault(svc), db
}

func seedOwnedLead(t *testing.T, db *gorm.DB) (*entity.User, *entity.Lead) {
	t.Helper()
	now := utils.NowUTC()

	user := &entity.User{ID: uid.Generate(), Nome: "Maria", Email: "maria@test.com",
		PasswordHash: "x", Role: entity.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(user).Error)

	lead := &entity.Lead{ID: uid.Generate(), Cnpj: "11222333000181",
		NomeDevedor: "Devedora LTDA", Status: entity.StatusVerificado,
		UserID: user.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(lead).Error)
	return user, lead
}

func patchLead(t *testing.T, route *DefaultPipelineRoute, actor *entity.User, leadID, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/leads/"+leadID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/leads/:id")
	c.SetParamNames("id")
	c.SetParamValues(leadID)
	c.Set("user", actor)

	require.NoError(t, route.UpdateLeadStatus(c))
	return rec
}

func TestUpdateLeadStatusRoute(t *testing.T) {
	route, db := newPipelineRoute(t)
	user, lead := seedOwnedLead(t, db)

	rec := patchLead(t, route, user, fmt.Sprintf("%d", lead.ID), `{"status":"CONTATADO"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp contract.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CONTATADO", resp.Status)
}

func TestUpdateLeadStatusRouteRejectsUnknownStatus(t *testing.T) {
	route, db := newPipelineRoute(t)
	user, lead := seedOwnedLead(t, db)

	rec := patchLead(t, route, user, fmt.Sprintf("%d", lead.ID), `{"status":"FECHADO"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLeadStatusRouteBadIDParam(t *testing.T) {
	route, db := newPipelineRoute(t)
	user, _ := seedOwnedLead(t, db)

	rec := patchLead(t, route, user, "abc", `{"status":"CONTATADO"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnsureNegocioRoute(t *testing.T) {
	route, db := newPipelineRoute(t)
	user, lead := seedOwnedLead(t, db)

	e := echo.New()
	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/leads/:id/negocio")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", lead.ID))
		c.Set("user", user)
		require.NoError(t, route.EnsureNegocio(c))
		return rec
	}

	first := call()
	require.Equal(t, http.StatusOK, first.Code)
	second := call()
	require.Equal(t, http.StatusOK, second.Code)

	var a, b contract.NegocioResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.ID, b.ID)
}

func TestUpdateLeadStatusRouteForeignLeadHidden(t *testing.T) {
	route, db := newPipelineRoute(t)
	_, lead := seedOwnedLead(t, db)

	now := utils.NowUTC()
	intruder := &entity.User{ID: uid.Generate(), Nome: "Intruder", Email: "intruder@test.com",
		PasswordHash: "x", Role: entity.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(intruder).Error)

	rec := patchLead(t, route, intruder, fmt.Sprintf("%d", lead.ID), `{"status":"CONTATADO"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
