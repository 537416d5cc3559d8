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
	"prospecta/cmd/internal/utils/uid"
)

func newContatoService(t *testing.T, db *gorm.DB) *ContatoService {
	t.Helper()
	return NewContatoService(
		db,
		policy.NewOwnershipGuard(),
		repository.NewContatoRepository(db),
		newValidate(t),
	)
}

// seedEmpresaFor creates an empresa and points the lead at it, making
// the empresa reachable for the lead's owner.
func seedEmpresaFor(t *testing.T, db *gorm.DB, lead *entity.Lead) *entity.Empresa {
	t.Helper()
	empresa := &entity.Empresa{
		ID:          uid.Generate(),
		Cnpj:        lead.Cnpj,
		RazaoSocial: "Empresa " + lead.Cnpj,
		EnrichedAt:  utils.NowUTC(),
	}
	require.NoError(t, db.Create(empresa).Error)
	require.NoError(t, db.Model(&entity.Lead{}).
		Where("id = ?", lead.ID).
		Update("empresa_id", empresa.ID).Error)
	return empresa
}

func TestCreateContatoOnReachableEmpresa(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	empresa := seedEmpresaFor(t, db, lead)
	svc := newContatoService(t, db)

	resp, apierr := svc.Create(owner, &contract.CreateContatoRequest{
		EmpresaID: empresa.ID,
		Nome:      "Maria Silva",
		Cargo:     "Diretora Financeira",
	})
	require.Nil(t, apierr)
	assert.Equal(t, empresa.ID, resp.EmpresaID)

	// The empresa is shared but not reachable for a user without a lead
	// pointing at it.
	_, apierr = svc.Create(intruder, &contract.CreateContatoRequest{
		EmpresaID: empresa.ID,
		Nome:      "Invasor",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestContatoReachableByBothTenantsOfSharedEmpresa(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "a@test.com")
	userB := seedUser(t, db, "b@test.com")
	leadA := seedLead(t, db, userA, testCNPJ)
	leadB := seedLead(t, db, userB, testCNPJ)
	empresa := seedEmpresaFor(t, db, leadA)
	require.NoError(t, db.Model(&entity.Lead{}).
		Where("id = ?", leadB.ID).
		Update("empresa_id", empresa.ID).Error)
	svc := newContatoService(t, db)

	created, apierr := svc.Create(userA, &contract.CreateContatoRequest{
		EmpresaID: empresa.ID,
		Nome:      "Contato Compartilhado",
	})
	require.Nil(t, apierr)

	// Contacts ride on the shared empresa record, so the other tenant
	// tracking the same company can edit them too.
	cargo := "Sócio"
	_, apierr = svc.Update(userB, created.ID, &contract.UpdateContatoRequest{Cargo: &cargo})
	require.Nil(t, apierr)
}

func TestUpdateAndDeleteContato(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	intruder := seedUser(t, db, "intruder@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	empresa := seedEmpresaFor(t, db, lead)
	svc := newContatoService(t, db)

	created, apierr := svc.Create(owner, &contract.CreateContatoRequest{
		EmpresaID: empresa.ID,
		Nome:      "Maria Silva",
	})
	require.Nil(t, apierr)

	telefone := "11 99999-0000"
	updated, apierr := svc.Update(owner, created.ID, &contract.UpdateContatoRequest{
		Telefone: &telefone,
	})
	require.Nil(t, apierr)
	assert.Equal(t, telefone, updated.Telefone)
	assert.Equal(t, "Maria Silva", updated.Nome)

	apierr = svc.Delete(intruder, created.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	require.Nil(t, svc.Delete(owner, created.ID))
	var count int64
	require.NoError(t, db.Model(&entity.Contato{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
