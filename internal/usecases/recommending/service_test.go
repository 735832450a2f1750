package recommending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func TestPortfolioRateKey(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"zero", 0, PortfolioRateVeryLow},
		{"logo abaixo de 1", 0.99, PortfolioRateVeryLow},
		{"fronteira inferior da faixa baixa", 1, PortfolioRateLow},
		{"fronteira superior da faixa baixa", 2, PortfolioRateLow},
		{"dentro da lacuna 2..2.01 cai no else", 2.005, PortfolioRateExcellent},
		{"início da faixa boa", 2.01, PortfolioRateGood},
		{"fim da faixa boa", 3, PortfolioRateGood},
		{"faixa muito boa", 4, PortfolioRateVeryGood},
		{"fronteira superior da muito boa", 5, PortfolioRateVeryGood},
		{"acima de 5", 5.01, PortfolioRateExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.PortfolioRateKey(tt.rate))
		})
	}
}

func TestNewWorkRateKey(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"100% tem faixa própria", 100, NewWorkRateFull},
		{"logo abaixo de 100", 99.99, NewWorkRateSuper},
		{"fronteira da super", 30, NewWorkRateSuper},
		{"faixa excelente", 25, NewWorkRateExcellent},
		{"fronteira da excelente", 20, NewWorkRateExcellent},
		{"faixa boa", 15, NewWorkRateGood},
		{"fronteira da boa", 10, NewWorkRateGood},
		{"abaixo de 10", 9.99, NewWorkRateLow},
		{"zero", 0, NewWorkRateLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.NewWorkRateKey(tt.rate))
		})
	}
}

func TestLimitUsageKey(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		usage    float64
		expected string
	}{
		{"zero", 0, LimitUsageVeryLow},
		{"fronteira da muito baixa", 30, LimitUsageVeryLow},
		{"faixa baixa", 45, LimitUsageLow},
		{"fronteira da baixa", 60, LimitUsageLow},
		{"dentro da lacuna 60..61 cai no else", 60.5, LimitUsageExcellent},
		{"início da faixa normal", 61, LimitUsageNormal},
		{"fim da faixa normal", 80, LimitUsageNormal},
		{"faixa boa", 90, LimitUsageGood},
		{"fim da faixa boa", 95, LimitUsageGood},
		{"dentro da lacuna 95..96 cai no else", 95.5, LimitUsageExcellent},
		{"uso total", 100, LimitUsageExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.LimitUsageKey(tt.usage))
		})
	}
}

func TestAcceptanceRateKey(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"zero", 0, AcceptanceRateVeryLow},
		{"fronteira da muito baixa", 30, AcceptanceRateVeryLow},
		{"início da faixa baixa", 31, AcceptanceRateLow},
		{"fim da faixa baixa", 50, AcceptanceRateLow},
		{"faixa normal", 53, AcceptanceRateNormal},
		{"fim da faixa normal", 55, AcceptanceRateNormal},
		{"faixa boa", 60, AcceptanceRateGood},
		{"fim da faixa boa", 65, AcceptanceRateGood},
		{"acima de 65", 66, AcceptanceRateExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.AcceptanceRateKey(tt.rate))
		})
	}
}

func TestLexiconCoversAllKeys(t *testing.T) {
	// Toda chave que as funções de faixa podem devolver precisa ter texto
	keys := []string{
		PortfolioRateVeryLow, PortfolioRateLow, PortfolioRateGood,
		PortfolioRateVeryGood, PortfolioRateExcellent,
		NewWorkRateFull, NewWorkRateSuper, NewWorkRateExcellent,
		NewWorkRateGood, NewWorkRateLow,
		LimitUsageVeryLow, LimitUsageLow, LimitUsageNormal,
		LimitUsageGood, LimitUsageExcellent,
		AcceptanceRateVeryLow, AcceptanceRateLow, AcceptanceRateNormal,
		AcceptanceRateGood, AcceptanceRateExcellent,
	}

	for _, key := range keys {
		text, ok := Lexicon[key]
		assert.True(t, ok, "chave sem texto no léxico: %s", key)
		assert.NotEmpty(t, text, "texto vazio no léxico: %s", key)
	}
}

func TestEvaluate(t *testing.T) {
	service := NewService()

	result := &domain.AnalysisResult{
		PortfolioSoldPercent: 2.5,
		NewWorksSalesPercent: 35.0,
		UploadLimitUsage:     70.0,
		AcceptanceRate:       52.0,
	}

	recs, err := service.Evaluate(result)

	require.NoError(t, err)
	assert.Equal(t, PortfolioRateGood, recs.Portfolio.Key)
	assert.Equal(t, Lexicon[PortfolioRateGood], recs.Portfolio.Text)
	assert.Equal(t, NewWorkRateSuper, recs.NewWorks.Key)
	assert.Equal(t, LimitUsageNormal, recs.UploadLimit.Key)
	assert.Equal(t, AcceptanceRateNormal, recs.Acceptance.Key)
}
