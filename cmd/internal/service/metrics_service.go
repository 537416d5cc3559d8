package service

import (
	"sort"
	"time"

	"github.com/labstack/gommon/log"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils/apierror"
)

const defaultMetricsWindow = 30 * 24 * time.Hour

// funnelRank orders statuses by how far the lead progressed through the
// pipeline. Dead ends keep the rank of the last stage they reached.
var funnelRank = map[entity.LeadStatus]int{
	entity.StatusAVerificar:        0,
	entity.StatusDescartado:        0,
	entity.StatusVerificado:        1,
	entity.StatusContatado:         2,
	entity.StatusAguardandoReposta: 3,
	entity.StatusNaoTemInteresse:   3,
	entity.StatusEmNegociacao:      4,
	entity.StatusConvertido:        5,
}

var funnelStages = []struct {
	Name    string
	MinRank int
}{
	{"Novos", 0},
	{"Verificados", 1},
	{"Contatados", 2},
	{"Em Negociação", 4},
	{"Convertidos", 5},
}

type LeadStatsRepository interface {
	StatusesCreatedBetween(userID, start, end int64) ([]entity.LeadStatus, error)
	ContactedUpdatedBetween(userID, start, end int64) ([]int64, error)
}

type NegocioStatsRepository interface {
	SummaryBetween(userID, start, end int64) (*repository.FinancialSummary, error)
	ClosedBetween(userID, start, end int64) ([]*repository.ClosedValue, error)
}

// MetricsService computes the dashboard numbers. Every figure is scoped
// to the acting user's rows; no aggregate ever crosses tenants.
type MetricsService struct {
	LeadStats    LeadStatsRepository
	NegocioStats NegocioStatsRepository
}

func NewMetricsService(leadStats LeadStatsRepository, negocioStats NegocioStatsRepository) *MetricsService {
	return &MetricsService{
		LeadStats:    leadStats,
		NegocioStats: negocioStats,
	}
}

// GetMetrics aggregates the dashboard for the given window. Dates come
// as yyyy-mm-dd; an absent or malformed window defaults to the last 30
// days.
func (m *MetricsService) GetMetrics(actor *entity.User, startDate, endDate string) (*contract.MetricsResponse, apierror.ErrorResponse) {
	start, end := parseWindow(startDate, endDate)

	statuses, err := m.LeadStats.StatusesCreatedBetween(actor.ID, start, end)
	if err != nil {
		log.Errorf("failed to fetch lead statuses: %v", err)
		return nil, apierror.InternalServerError
	}

	summary, err := m.NegocioStats.SummaryBetween(actor.ID, start, end)
	if err != nil {
		log.Errorf("failed to fetch financial summary: %v", err)
		return nil, apierror.InternalServerError
	}

	contacted, err := m.LeadStats.ContactedUpdatedBetween(actor.ID, start, end)
	if err != nil {
		log.Errorf("failed to fetch contacted stamps: %v", err)
		return nil, apierror.InternalServerError
	}

	closed, err := m.NegocioStats.ClosedBetween(actor.ID, start, end)
	if err != nil {
		log.Errorf("failed to fetch closed deals: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.MetricsResponse{
		StatusDistribution: statusDistribution(statuses),
		Funnel:             funnel(statuses),
		Financial: &contract.FinancialSummaryResponse{
			TotalFechado:       summary.TotalFechado,
			TotalEscritorio:    summary.TotalEscritorio,
			TotalOutraParte:    summary.TotalOutraParte,
			TotalRecebido:      summary.TotalRecebido,
			QuantidadeNegocios: summary.QuantidadeNegocios,
		},
		DailyPerformance: dailyPerformance(contacted, closed),
	}, nil
}

func parseWindow(startDate, endDate string) (int64, int64) {
	end := time.Now().UTC()
	start := end.Add(-defaultMetricsWindow)

	if t, err := time.Parse("2006-01-02", startDate); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", endDate); err == nil {
		// Window is inclusive of the whole end day.
		end = t.Add(24*time.Hour - time.Millisecond)
	}
	return start.UnixMilli(), end.UnixMilli()
}

func statusDistribution(statuses []entity.LeadStatus) []*contract.StatusCount {
	counts := map[entity.LeadStatus]int64{}
	for _, status := range statuses {
		counts[status]++
	}

	distribution := make([]*contract.StatusCount, 0, len(counts))
	for status, count := range counts {
		distribution = append(distribution, &contract.StatusCount{
			Status: string(status),
			Count:  count,
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Status < distribution[j].Status
	})
	return distribution
}

func funnel(statuses []entity.LeadStatus) []*contract.FunnelStage {
	stages := make([]*contract.FunnelStage, len(funnelStages))
	for i, stage := range funnelStages {
		var count int64
		for _, status := range statuses {
			if funnelRank[status] >= stage.MinRank {
				count++
			}
		}
		stages[i] = &contract.FunnelStage{Stage: stage.Name, Count: count}
	}
	return stages
}

func dailyPerformance(contacted []int64, closed []*repository.ClosedValue) []*contract.DailyPoint {
	points := map[string]*contract.DailyPoint{}
	bucket := func(millis int64) *contract.DailyPoint {
		date := time.UnixMilli(millis).UTC().Format("2006-01-02")
		point, ok := points[date]
		if !ok {
			point = &contract.DailyPoint{Date: date}
			points[date] = point
		}
		return point
	}

	for _, stamp := range contacted {
		bucket(stamp).Contatados++
	}
	for _, deal := range closed {
		bucket(deal.DataFechamento).ValorFechado += deal.ValorFechado
	}

	series := make([]*contract.DailyPoint, 0, len(points))
	for _, point := range points {
		series = append(series, point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}
