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
	"prospecta/cmd/internal/utils"
)

func newAgendaService(t *testing.T, db *gorm.DB) *AgendaService {
	t.Helper()
	return NewAgendaService(
		db,
		policy.NewOwnershipGuard(),
		repository.NewAtividadeRepository(db),
		repository.NewLembreteRepository(db),
		newValidate(t),
	)
}

func TestAddAtividade(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newAgendaService(t, db)

	resp, apierr := svc.AddAtividade(owner, &contract.CreateAtividadeRequest{
		LeadID:   lead.ID,
		Conteudo: "Liguei, retornar semana que vem",
	})
	require.Nil(t, apierr)
	assert.Equal(t, lead.ID, resp.LeadID)

	_, apierr = svc.AddAtividade(intruder, &contract.CreateAtividadeRequest{
		LeadID:   lead.ID,
		Conteudo: "tentativa de escrita cruzada",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestLembreteLifecycle(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newAgendaService(t, db)

	created, apierr := svc.AddLembrete(owner, &contract.CreateLembreteRequest{
		LeadID:    lead.ID,
		Descricao: "Enviar proposta",
		Data:      utils.NowUTC() + 86400000,
	})
	require.Nil(t, apierr)
	assert.False(t, created.Concluido)

	// Toggle completion without touching the date.
	done := true
	toggled, apierr := svc.UpdateLembrete(owner, created.ID, &contract.UpdateLembreteRequest{
		Concluido: &done,
	})
	require.Nil(t, apierr)
	assert.True(t, toggled.Concluido)
	assert.Equal(t, created.Data, toggled.Data)

	// Reschedule without touching completion.
	newDate := utils.NowUTC() + 2*86400000
	moved, apierr := svc.UpdateLembrete(owner, created.ID, &contract.UpdateLembreteRequest{
		Data: &newDate,
	})
	require.Nil(t, apierr)
	assert.True(t, moved.Concluido)
	assert.NotEqual(t, created.Data, moved.Data)

	require.Nil(t, svc.DeleteLembrete(owner, created.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Lembrete{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteLembreteForeignHidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	svc := newAgendaService(t, db)

	created, apierr := svc.AddLembrete(owner, &contract.CreateLembreteRequest{
		LeadID:    lead.ID,
		Descricao: "Enviar proposta",
		Data:      utils.NowUTC() + 86400000,
	})
	require.Nil(t, apierr)

	apierr = svc.DeleteLembrete(intruder, created.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	// The reminder survives the rejected delete.
	var count int64
	require.NoError(t, db.Model(&entity.Lembrete{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpcomingLembretes(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	other := seedUser(t, db, "other@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	foreign := seedLead(t, db, other, testCNPJBanco)
	svc := newAgendaService(t, db)

	later, apierr := svc.AddLembrete(owner, &contract.CreateLembreteRequest{
		LeadID: lead.ID, Descricao: "depois", Data: utils.NowUTC() + 2*86400000,
	})
	require.Nil(t, apierr)
	sooner, apierr := svc.AddLembrete(owner, &contract.CreateLembreteRequest{
		LeadID: lead.ID, Descricao: "antes", Data: utils.NowUTC() + 86400000,
	})
	require.Nil(t, apierr)
	finished, apierr := svc.AddLembrete(owner, &contract.CreateLembreteRequest{
		LeadID: lead.ID, Descricao: "feito", Data: utils.NowUTC() + 3*86400000,
	})
	require.Nil(t, apierr)
	done := true
	_, apierr = svc.UpdateLembrete(owner, finished.ID, &contract.UpdateLembreteRequest{Concluido: &done})
	require.Nil(t, apierr)

	_, apierr = svc.AddLembrete(other, &contract.CreateLembreteRequest{
		LeadID: foreign.ID, Descricao: "de outro tenant", Data: utils.NowUTC() + 86400000,
	})
	require.Nil(t, apierr)

	upcoming, apierr := svc.Upcoming(owner)
	require.Nil(t, apierr)
	// Pending only, caller-scoped, soonest first.
	require.Len(t, upcoming, 2)
	assert.Equal(t, sooner.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
	assert.Equal(t, lead.NomeDevedor, upcoming[0].NomeDevedor)
}
