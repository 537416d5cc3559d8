package contract

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type FinancialSummaryResponse struct {
	TotalFechado       float64 `json:"totalFechado"`
	TotalEscritorio    float64 `json:"totalEscritorio"`
	TotalOutraParte    float64 `json:"totalOutraParte"`
	TotalRecebido      float64 `json:"totalRecebido"`
	QuantidadeNegocios int64   `json:"quantidadeNegocios"`
}

// DailyPoint is one day of the performance series, keyed by the
// ISO date (yyyy-mm-dd) of the bucket.
type DailyPoint struct {
	Date         string  `json:"date"`
	Contatados   int64   `json:"contatados"`
	ValorFechado float64 `json:"valorFechado"`
}

type MetricsResponse struct {
	StatusDistribution []*StatusCount            `json:"statusDistribution"`
	Funnel             []*FunnelStage            `json:"funnel"`
	Financial          *FinancialSummaryResponse `json:"financial"`
	DailyPerformance   []*DailyPoint             `json:"dailyPerformance"`
}
