package analyzing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func cleanRecord(saleTime time.Time, assetID string, royalty float64) *domain.SalesRecord {
	amount := decimal.NewFromFloat(royalty)
	return &domain.SalesRecord{
		SaleTime:    &saleTime,
		AssetID:     assetID,
		AssetTitle:  "Asset " + assetID,
		LicensePlan: domain.LicenseSubscription,
		RoyaltyUSD:  &amount,
		MediaType:   domain.MediaPhotos,
	}
}

func brokenRecord() *domain.SalesRecord {
	// Sem data de venda nem valor: entra só na taxa de linhas quebradas
	return &domain.SalesRecord{AssetID: "BRK"}
}

func TestFilterBroken_AboveThresholdRejectsFile(t *testing.T) {
	saleTime := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// 2 de 8 linhas quebradas = 25%, acima do limite de 20%
	records := []*domain.SalesRecord{
		cleanRecord(saleTime, "A1", 1.0),
		cleanRecord(saleTime, "A2", 1.0),
		cleanRecord(saleTime, "A3", 1.0),
		cleanRecord(saleTime, "A4", 1.0),
		cleanRecord(saleTime, "A5", 1.0),
		cleanRecord(saleTime, "A6", 1.0),
		brokenRecord(),
		brokenRecord(),
	}

	service := newTestService()
	clean, brokenRows, brokenPct, err := service.FilterBroken(records)

	require.Error(t, err)
	assert.Nil(t, clean)
	assert.Equal(t, 2, brokenRows)
	assert.Equal(t, 25.0, brokenPct)

	assert.True(t, IsDataQualityError(err))

	var qualityErr *DataQualityError
	require.ErrorAs(t, err, &qualityErr)
	assert.Equal(t, 25.0, qualityErr.BrokenPct)
	assert.Equal(t, 20.0, qualityErr.ThresholdPct)
	assert.Equal(t, 8, qualityErr.RowsTotal)
	assert.Equal(t, 2, qualityErr.BrokenRows)
}

func TestFilterBroken_AtThresholdPasses(t *testing.T) {
	saleTime := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// Exatamente 20% quebradas: o limite é exclusivo, o arquivo passa
	records := make([]*domain.SalesRecord, 0, 10)
	for i := 0; i < 8; i++ {
		records = append(records, cleanRecord(saleTime, "A1", 1.0))
	}
	records = append(records, brokenRecord(), brokenRecord())

	service := newTestService()
	clean, brokenRows, brokenPct, err := service.FilterBroken(records)

	require.NoError(t, err)
	assert.Len(t, clean, 8)
	assert.Equal(t, 2, brokenRows)
	assert.Equal(t, 20.0, brokenPct)
}

func TestFilterBroken_EmptyInput(t *testing.T) {
	service := newTestService()
	clean, brokenRows, brokenPct, err := service.FilterBroken(nil)

	require.NoError(t, err)
	assert.Empty(t, clean)
	assert.Zero(t, brokenRows)
	assert.Zero(t, brokenPct)
}
