package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
)

func newPipelineService(t *testing.T, db *gorm.DB) *PipelineService {
	t.Helper()
	return NewPipelineService(
		db,
		policy.NewOwnershipGuard(),
		repository.NewLeadRepository(db),
		repository.NewNegocioRepository(db),
		newValidate(t),
	)
}

func TestSetStatusFreeTransitions(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	// Any enum member can follow any other, including walking a lead
	// back out of CONVERTIDO.
	sequence := []entity.LeadStatus{
		entity.StatusContatado,
		entity.StatusConvertido,
		entity.StatusEmNegociacao,
		entity.StatusDescartado,
		entity.StatusAVerificar,
	}
	for _, status := range sequence {
		resp, apierr := svc.SetStatus(owner, lead.ID, &contract.UpdateLeadStatusRequest{
			Status: string(status),
		})
		require.Nil(t, apierr, "transition to %s", status)
		assert.Equal(t, string(status), resp.Status)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	resp, apierr := svc.SetStatus(owner, lead.ID, &contract.UpdateLeadStatusRequest{
		Status: "GANHOU_NA_LOTERIA",
	})
	assert.Nil(t, resp)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())

	var reloaded entity.Lead
	require.NoError(t, db.First(&reloaded, lead.ID).Error)
	assert.Equal(t, entity.StatusAVerificar, reloaded.Status)
}

func TestSetStatusForeignLeadHidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	_, apierr := svc.SetStatus(intruder, lead.ID, &contract.UpdateLeadStatusRequest{
		Status: string(entity.StatusContatado),
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestEnsureNegocioIdempotent(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	first, apierr := svc.EnsureNegocio(owner, lead.ID)
	require.Nil(t, apierr)
	assert.Zero(t, first.ValorFechado)
	assert.Equal(t, owner.ID, first.UserID)

	second, apierr := svc.EnsureNegocio(owner, lead.ID)
	require.Nil(t, apierr)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Negocio{}).Where("lead_id = ?", lead.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureNegocioForeignLeadHidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	_, apierr := svc.EnsureNegocio(intruder, lead.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestUpdateNegocioPartial(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	negocio, apierr := svc.EnsureNegocio(owner, lead.ID)
	require.Nil(t, apierr)

	fechado := 50000.0
	fechamento := int64(1767225600000)
	resp, apierr := svc.UpdateNegocio(owner, negocio.ID, &contract.UpdateNegocioRequest{
		ValorFechado:   &fechado,
		DataFechamento: &fechamento,
	})
	require.Nil(t, apierr)
	assert.Equal(t, fechado, resp.ValorFechado)
	require.NotNil(t, resp.DataFechamento)

	// Untouched fields keep their values.
	assert.Zero(t, resp.ValorEscritorio)
	assert.Zero(t, resp.ValorRecebido)
}

func TestUpdateNegocioForeignHidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newPipelineService(t, db)

	negocio, apierr := svc.EnsureNegocio(owner, lead.ID)
	require.Nil(t, apierr)

	fechado := 1.0
	_, apierr = svc.UpdateNegocio(intruder, negocio.ID, &contract.UpdateNegocioRequest{
		ValorFechado: &fechado,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}
