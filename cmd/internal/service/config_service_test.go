package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
)

func newConfigService(t *testing.T, db *gorm.DB, store *fakeStorage) *ConfigService {
	t.Helper()
	return NewConfigService(repository.NewConfiguracaoRepository(db), store, newValidate(t))
}

func TestGetConfigCreatesDefault(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	svc := newConfigService(t, db, newFakeStorage())

	first, apierr := svc.Get(owner)
	require.Nil(t, apierr)
	assert.Equal(t, "Minha Empresa", first.NomeEmpresa)

	// A second read returns the same lazily created row.
	second, apierr := svc.Get(owner)
	require.Nil(t, apierr)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Configuracao{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateConfig(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	svc := newConfigService(t, db, newFakeStorage())

	nome := "Escritório Exemplo Advogados"
	cnpj := "11.222.333/0001-81"
	resp, apierr := svc.Update(owner, &contract.UpdateConfigRequest{
		NomeEmpresa: &nome,
		Cnpj:        &cnpj,
	})
	require.Nil(t, apierr)
	assert.Equal(t, nome, resp.NomeEmpresa)
	assert.Equal(t, testCNPJ, resp.Cnpj)
}

func TestConfigIsPerTenant(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "a@test.com")
	userB := seedUser(t, db, "b@test.com")
	svc := newConfigService(t, db, newFakeStorage())

	nome := "Escritório A"
	_, apierr := svc.Update(userA, &contract.UpdateConfigRequest{NomeEmpresa: &nome})
	require.Nil(t, apierr)

	configB, apierr := svc.Get(userB)
	require.Nil(t, apierr)
	assert.Equal(t, "Minha Empresa", configB.NomeEmpresa)
}
