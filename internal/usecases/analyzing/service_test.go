package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func TestAnalyze_FullPipeline(t *testing.T) {
	now := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)

	// 1 de 5 linhas quebradas = 20%, exatamente no limite: o arquivo passa
	content := "2025-07-01T10:30:00Z,A001,Sunset Beach,subscription,0.99,photos,sunset.jpg,user,standard\n" +
		"2025-07-05T08:00:00Z,A001,Sunset Beach,subscription,1.01,photos,sunset.jpg,user,standard\n" +
		"2025-07-10T09:00:00Z,B002,City Lights,custom,2.00,videos,city.mp4,user,large\n" +
		"2025-07-12T16:45:00Z,B002,City Lights,custom,3.00,videos,city.mp4,user,large\n" +
		"not-a-date,C003,Broken Row,custom,abc,photos,x.jpg,user,standard\n"

	inputs := domain.ProcessingInputs{
		PortfolioSize:  100,
		UploadLimit:    50,
		MonthlyUploads: 40,
		AcceptanceRate: 55.0,
	}

	service := newTestService()
	result, err := service.Analyze(writeSalesFile(t, content), inputs, now)

	require.NoError(t, err)
	assert.Equal(t, domain.SchemaPerSale, result.SourceSchema)
	assert.Equal(t, "2025-07-01", result.PeriodMonth)
	assert.Equal(t, "Julho 2025", result.PeriodLabel)

	assert.Equal(t, 5, result.RowsTotal)
	assert.Equal(t, 1, result.BrokenRows)
	assert.Equal(t, 20.0, result.BrokenPct)
	assert.Equal(t, 4, result.RowsUsed)

	assert.Equal(t, "7.00", result.TotalRevenueUSD.StringFixed(2))
	assert.Equal(t, 2, result.UniqueAssetsSold)
}

func TestAnalyze_RejectsFileAboveQualityThreshold(t *testing.T) {
	now := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)

	// 2 de 4 linhas quebradas = 50%
	content := "2025-07-01T10:30:00Z,A001,Sunset,subscription,0.99,photos,sunset.jpg,user,standard\n" +
		"2025-07-05T08:00:00Z,B002,City,custom,2.00,videos,city.mp4,user,large\n" +
		"not-a-date,C003,Broken One,custom,abc,photos,x.jpg,user,standard\n" +
		"not-a-date,D004,Broken Two,custom,abc,photos,y.jpg,user,standard\n"

	service := newTestService()
	_, err := service.Analyze(writeSalesFile(t, content), domain.ProcessingInputs{}, now)

	require.Error(t, err)
	assert.True(t, IsDataQualityError(err))

	var qualityErr *DataQualityError
	require.ErrorAs(t, err, &qualityErr)
	assert.Equal(t, 50.0, qualityErr.BrokenPct)
	assert.Equal(t, 4, qualityErr.RowsTotal)
}

func TestAnalyze_EmptyFileWithFailOnEmpty(t *testing.T) {
	now := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)

	service := newTestService()
	service.failOnEmpty = true

	_, err := service.Analyze(writeSalesFile(t, ""), domain.ProcessingInputs{}, now)

	require.Error(t, err)
	assert.True(t, IsEmptyInputError(err))
}

func TestAnalyze_EmptyFileProducesZeroedResult(t *testing.T) {
	now := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)

	// failOnEmpty desligado: arquivo vazio vira relatório zerado do mês corrente
	service := newTestService()
	result, err := service.Analyze(writeSalesFile(t, ""), domain.ProcessingInputs{AcceptanceRate: 40.0}, now)

	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", result.PeriodMonth)
	assert.Equal(t, "Agosto 2025", result.PeriodLabel)
	assert.Zero(t, result.RowsTotal)
	assert.Zero(t, result.RowsUsed)
	assert.Equal(t, "0.00", result.TotalRevenueUSD.StringFixed(2))
	assert.Equal(t, 40.0, result.AcceptanceRate)
}
