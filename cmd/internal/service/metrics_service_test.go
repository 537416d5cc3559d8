package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/uid"
)

func newMetricsService(db *gorm.DB) *MetricsService {
	return NewMetricsService(
		repository.NewLeadRepository(db),
		repository.NewNegocioRepository(db),
	)
}

func seedLeadWithStatus(t *testing.T, db *gorm.DB, owner *entity.User, cnpj string, status entity.LeadStatus) *entity.Lead {
	t.Helper()
	lead := seedLead(t, db, owner, cnpj)
	require.NoError(t, db.Model(&entity.Lead{}).
		Where("id = ?", lead.ID).
		Update("status", status).Error)
	return lead
}

func TestMetricsStatusDistributionAndFunnel(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	seedLeadWithStatus(t, db, owner, testCNPJ, entity.StatusAVerificar)
	seedLeadWithStatus(t, db, owner, testCNPJBanco, entity.StatusContatado)
	seedLeadWithStatus(t, db, owner, testCNPJVale, entity.StatusConvertido)
	svc := newMetricsService(db)

	metrics, apierr := svc.GetMetrics(owner, "", "")
	require.Nil(t, apierr)

	byStatus := map[string]int64{}
	for _, entry := range metrics.StatusDistribution {
		byStatus[entry.Status] = entry.Count
	}
	assert.EqualValues(t, 1, byStatus[string(entity.StatusAVerificar)])
	assert.EqualValues(t, 1, byStatus[string(entity.StatusContatado)])
	assert.EqualValues(t, 1, byStatus[string(entity.StatusConvertido)])

	byStage := map[string]int64{}
	for _, stage := range metrics.Funnel {
		byStage[stage.Stage] = stage.Count
	}
	// Funnel stages are cumulative: a converted lead counts in every
	// stage it passed through.
	assert.EqualValues(t, 3, byStage["Novos"])
	assert.EqualValues(t, 2, byStage["Verificados"])
	assert.EqualValues(t, 2, byStage["Contatados"])
	assert.EqualValues(t, 1, byStage["Convertidos"])
}

func TestMetricsFinancialSummary(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	other := seedUser(t, db, "other@test.com")
	lead := seedLead(t, db, owner, testCNPJ)
	foreign := seedLead(t, db, other, testCNPJBanco)

	now := utils.NowUTC()
	require.NoError(t, db.Create(&entity.Negocio{
		ID: uid.Generate(), LeadID: lead.ID, UserID: owner.ID,
		ValorFechado: 80000, ValorEscritorio: 30000, ValorOutraParte: 50000,
		ValorRecebido: 10000, DataFechamento: &now,
		CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&entity.Negocio{
		ID: uid.Generate(), LeadID: foreign.ID, UserID: other.ID,
		ValorFechado: 999999, DataFechamento: &now,
		CreatedAt: now, UpdatedAt: now,
	}).Error)

	svc := newMetricsService(db)
	metrics, apierr := svc.GetMetrics(owner, "", "")
	require.Nil(t, apierr)

	// Only the caller's deal is aggregated.
	assert.Equal(t, 80000.0, metrics.Financial.TotalFechado)
	assert.Equal(t, 30000.0, metrics.Financial.TotalEscritorio)
	assert.EqualValues(t, 1, metrics.Financial.QuantidadeNegocios)
}

func TestMetricsDailyPerformance(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	lead := seedLeadWithStatus(t, db, owner, testCNPJ, entity.StatusContatado)

	now := utils.NowUTC()
	require.NoError(t, db.Create(&entity.Negocio{
		ID: uid.Generate(), LeadID: lead.ID, UserID: owner.ID,
		ValorFechado: 42000, DataFechamento: &now,
		CreatedAt: now, UpdatedAt: now,
	}).Error)

	svc := newMetricsService(db)
	metrics, apierr := svc.GetMetrics(owner, "", "")
	require.Nil(t, apierr)

	today := time.UnixMilli(now).UTC().Format("2006-01-02")
	require.NotEmpty(t, metrics.DailyPerformance)
	last := metrics.DailyPerformance[len(metrics.DailyPerformance)-1]
	assert.Equal(t, today, last.Date)
	assert.EqualValues(t, 1, last.Contatados)
	assert.Equal(t, 42000.0, last.ValorFechado)
}

func TestMetricsExplicitWindow(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.com")
	seedLeadWithStatus(t, db, owner, testCNPJ, entity.StatusContatado)

	svc := newMetricsService(db)
	// A window entirely in the past sees nothing.
	metrics, apierr := svc.GetMetrics(owner, "2020-01-01", "2020-01-31")
	require.Nil(t, apierr)
	assert.Empty(t, metrics.StatusDistribution)
	assert.Empty(t, metrics.DailyPerformance)
	assert.Zero(t, metrics.Financial.TotalFechado)
}
