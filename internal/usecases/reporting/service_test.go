package reporting

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/recommending"
)

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		PeriodMonth:          "2025-07-01",
		PeriodLabel:          "Julho 2025",
		RowsUsed:             42,
		TotalRevenueUSD:      decimal.NewFromFloat(123.45),
		UniqueAssetsSold:     17,
		AvgRevenuePerSale:    decimal.NewFromFloat(2.9393),
		PortfolioSoldPercent: 2.5,
		NewWorksSalesPercent: 35.0,
		UploadLimitUsage:     70.0,
		AcceptanceRate:       52.0,
		SalesByLicense: []domain.AggregateRow{
			{Category: "subscription", SalesCount: 30, RevenueUSD: decimal.NewFromFloat(80.00)},
			{Category: "custom", SalesCount: 12, RevenueUSD: decimal.NewFromFloat(43.45)},
		},
		SalesByMediaType: []domain.AggregateRow{
			{Category: "photos", SalesCount: 42, RevenueUSD: decimal.NewFromFloat(123.45)},
		},
		Top10ByRevenue: []domain.AssetRank{
			{AssetID: "A1", AssetTitle: "Primeiro", TotalSales: 10, TotalRevenue: decimal.NewFromFloat(50.00)},
			{AssetID: "A2", AssetTitle: "Segundo", TotalSales: 8, TotalRevenue: decimal.NewFromFloat(30.00)},
			{AssetID: "A3", AssetTitle: "Terceiro", TotalSales: 6, TotalRevenue: decimal.NewFromFloat(20.00)},
			{AssetID: "A4", AssetTitle: "Quarto", TotalSales: 5, TotalRevenue: decimal.NewFromFloat(10.00)},
			{AssetID: "A5", AssetTitle: "Quinto", TotalSales: 4, TotalRevenue: decimal.NewFromFloat(8.00)},
			{AssetID: "A6", AssetTitle: "Sexto", TotalSales: 3, TotalRevenue: decimal.NewFromFloat(5.45)},
		},
	}
}

func sampleRecommendations() *recommending.Set {
	return &recommending.Set{
		Portfolio:   recommending.Advice{Key: recommending.PortfolioRateGood, Text: "Continue no mesmo ritmo."},
		NewWorks:    recommending.Advice{Key: recommending.NewWorkRateSuper, Text: "Aumente o volume de envios."},
		UploadLimit: recommending.Advice{Key: recommending.LimitUsageNormal, Text: "Chegue perto do máximo."},
		Acceptance:  recommending.Advice{Key: recommending.AcceptanceRateNormal, Text: "Continue enviando."},
	}
}

func TestRender_FullReport(t *testing.T) {
	service := NewService()

	report, err := service.Render(sampleResult(), sampleRecommendations(), 10)
	require.NoError(t, err)

	assert.Contains(t, report, "Relatório de Julho 2025")
	assert.Contains(t, report, "• Vendas: 42")
	assert.Contains(t, report, "• Receita: $123.45")
	assert.Contains(t, report, "• Ativos únicos vendidos: 17")
	assert.Contains(t, report, "• Receita média por venda: $2.9393")
	assert.Contains(t, report, "• Portfólio vendido: 2.50%")
	assert.Contains(t, report, "• Participação de obras novas: 35.00%")
	assert.Contains(t, report, "• Taxa de aceitação: 52.00%")
	assert.Contains(t, report, "• Uso do limite de envios: 70.00%")

	assert.Contains(t, report, "• Subscription: 30 vendas / $80.00")
	assert.Contains(t, report, "• Photos: 42 vendas / $123.45")

	assert.Contains(t, report, "Top-10 ativos por receita:")
	assert.Contains(t, report, "1. Primeiro — $50.00 / 10 vendas")
	assert.Contains(t, report, "6. Sexto — $5.45 / 3 vendas")

	assert.Contains(t, report, "Continue no mesmo ritmo.")
	assert.Contains(t, report, "Aumente o volume de envios.")
	assert.Contains(t, report, "Conclusão:")
}

func TestRender_TopNTruncatesRanking(t *testing.T) {
	service := NewService()

	report, err := service.Render(sampleResult(), sampleRecommendations(), 5)
	require.NoError(t, err)

	assert.Contains(t, report, "Top-5 ativos por receita:")
	assert.Contains(t, report, "5. Quinto — $8.00 / 4 vendas")
	assert.NotContains(t, report, "Sexto")
}

func TestRender_TopNDefaultsToFive(t *testing.T) {
	service := NewService()

	report, err := service.Render(sampleResult(), sampleRecommendations(), 0)
	require.NoError(t, err)

	assert.Contains(t, report, "Top-5 ativos por receita:")
	assert.NotContains(t, report, "Sexto")
}

func TestRender_EmptyAggregatesShowPlaceholder(t *testing.T) {
	service := NewService()

	result := sampleResult()
	result.SalesByMediaType = nil
	result.Top10ByRevenue = nil

	report, err := service.Render(result, sampleRecommendations(), 5)
	require.NoError(t, err)

	assert.Contains(t, report, "• Dados indisponíveis")
	assert.False(t, strings.Contains(report, "ativos por receita"))
}

func TestRender_Failures(t *testing.T) {
	service := NewService()

	_, err := service.Render(nil, sampleRecommendations(), 5)
	assert.ErrorIs(t, err, ErrNilResult)

	_, err = service.Render(sampleResult(), nil, 5)
	assert.ErrorIs(t, err, ErrNilRecommendations)

	recs := sampleRecommendations()
	recs.Acceptance.Text = ""
	_, err = service.Render(sampleResult(), recs, 5)
	assert.ErrorIs(t, err, ErrEmptyAdvice)
}
