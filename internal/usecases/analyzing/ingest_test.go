package analyzing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func writeSalesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sales.csv")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func newTestService() *Service {
	return &Service{
		thresholdPct:       20.0,
		newWorksWindowDays: 90,
		failOnEmpty:        false,
	}
}

func TestNormalize_PerSaleSchema(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	content := "2025-07-01T10:30:00Z,A001,Sunset Beach,Subscription,\"$0.99\",Photos,sunset.jpg,user,standard\n" +
		"2025-07-05 08:00:00,A002,City Lights,Custom,\"5,50 USD\",Videos,city.mp4,user,large\n" +
		"2025-07-10,A003,Mountain Top,subscription,\"0,55 €\",photos,mountain.jpg,user,small\n"

	service := newTestService()
	normalized, err := service.Normalize(writeSalesFile(t, content), now)

	require.NoError(t, err)
	assert.Equal(t, domain.SchemaPerSale, normalized.Schema)
	require.Len(t, normalized.Records, 3)

	first := normalized.Records[0]
	require.NotNil(t, first.SaleTime)
	assert.Equal(t, time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC), *first.SaleTime)
	assert.Equal(t, "A001", first.AssetID)
	assert.Equal(t, "Sunset Beach", first.AssetTitle)
	assert.Equal(t, "subscription", first.LicensePlan)
	require.NotNil(t, first.RoyaltyUSD)
	assert.Equal(t, "0.99", first.RoyaltyUSD.String())
	assert.Equal(t, "photos", first.MediaType)

	// Valor com vírgula decimal e código de moeda
	second := normalized.Records[1]
	require.NotNil(t, second.RoyaltyUSD)
	assert.Equal(t, "5.5", second.RoyaltyUSD.String())
	assert.Equal(t, "custom", second.LicensePlan)

	// Data sem hora e símbolo de euro
	third := normalized.Records[2]
	require.NotNil(t, third.SaleTime)
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), *third.SaleTime)
	require.NotNil(t, third.RoyaltyUSD)
	assert.Equal(t, "0.55", third.RoyaltyUSD.String())
}

func TestNormalize_PerSaleBrokenFieldsBecomeNil(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	content := "not-a-date,A001,Sunset,custom,abc,photos,sunset.jpg,user,standard\n" +
		"2025-07-01T10:30:00Z,,Empty Asset,custom,1.00,photos,x.jpg,user,standard\n"

	service := newTestService()
	normalized, err := service.Normalize(writeSalesFile(t, content), now)

	require.NoError(t, err)
	require.Len(t, normalized.Records, 2)

	// Campos ilegíveis viram nil, a estrutura não derruba a ingestão
	assert.Nil(t, normalized.Records[0].SaleTime)
	assert.Nil(t, normalized.Records[0].RoyaltyUSD)
	assert.True(t, normalized.Records[0].Broken())

	assert.Empty(t, normalized.Records[1].AssetID)
	assert.True(t, normalized.Records[1].Broken())
}

func TestNormalize_AggregatedSchema(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	content := "Title,Asset ID,Sales,Revenue\n" +
		"Sunset Beach,A001,4,10.00\n" +
		"City Lights,A002,0,5.00\n" +
		"Mountain Top,A003,abc,3.00\n"

	service := newTestService()
	normalized, err := service.Normalize(writeSalesFile(t, content), now)

	require.NoError(t, err)
	assert.Equal(t, domain.SchemaAggregated, normalized.Schema)

	// Linhas com contagem inválida ou zero são ignoradas; a válida expande em
	// 4 registros sintéticos com a receita dividida igualmente
	require.Len(t, normalized.Records, 4)
	for _, record := range normalized.Records {
		assert.Equal(t, "A001", record.AssetID)
		assert.Equal(t, "Sunset Beach", record.AssetTitle)
		require.NotNil(t, record.RoyaltyUSD)
		assert.Equal(t, "2.5", record.RoyaltyUSD.String())
		require.NotNil(t, record.SaleTime)
		assert.Equal(t, now, *record.SaleTime)
		assert.False(t, record.Broken())
	}
}

func TestParseAmount_LocaleTolerance(t *testing.T) {
	// Todas as grafias abaixo normalizam para o mesmo valor
	for _, raw := range []string{"$0.99", "0,99", "0.99 USD", "  0.99  ", "0,99 €", "0.99 руб."} {
		amount := parseAmount(raw)
		require.NotNil(t, amount, "valor não interpretado: %q", raw)
		assert.Equal(t, "0.99", amount.String(), "entrada: %q", raw)
	}

	assert.Nil(t, parseAmount(""))
	assert.Nil(t, parseAmount("abc"))
	assert.Nil(t, parseAmount("USD"))
}

func TestNormalize_UnknownFormat(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	// Nem 9 colunas, nem cabeçalho agregado
	content := "foo,bar,baz\nqux,quux,corge\n"

	service := newTestService()
	_, err := service.Normalize(writeSalesFile(t, content), now)

	require.Error(t, err)
	assert.True(t, IsFormatError(err))

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNormalize_MissingFile(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	service := newTestService()
	_, err := service.Normalize(filepath.Join(t.TempDir(), "nao-existe.csv"), now)

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
	assert.ErrorIs(t, err, ErrUnreadableFile)
}

func TestNormalize_EmptyFile(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	service := newTestService()
	normalized, err := service.Normalize(writeSalesFile(t, ""), now)

	require.NoError(t, err)
	assert.Equal(t, domain.SchemaPerSale, normalized.Schema)
	assert.Empty(t, normalized.Records)
}
