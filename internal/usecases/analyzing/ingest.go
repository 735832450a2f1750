package analyzing

import (
	"encoding/csv"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

// Contrato principal: 9 colunas sem cabeçalho, nesta ordem
const (
	colSaleTime = iota
	colAssetID
	colAssetTitle
	colLicensePlan
	colRoyaltyUSD
	colMediaType
	colFilename
	colContributorName
	colSizeLabel

	expectedColumns = 9
)

// Cabeçalho mínimo do formato alternativo agregado
var aggregatedColumns = []string{"title", "asset id", "sales", "revenue"}

// Símbolos e códigos de moeda aceitos na normalização de valores
var (
	currencyTokens = regexp.MustCompile(`(?i)(USD|EUR|PLN|RUB|RUR|₽|€|\$|zł|руб\.?)`)
	whitespace     = regexp.MustCompile(`[\s\x{00A0}]`)
)

// Formatos de data aceitos; o contrato pede ISO-8601 com offset UTC, os demais
// são tolerados como UTC implícito
var saleTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize lê o arquivo delimitado e devolve os registros normalizados com a
// tag do schema detectado. Tenta primeiro o contrato de 9 colunas sem
// cabeçalho; se a estrutura não casar, tenta o formato agregado com cabeçalho.
func (s *Service) Normalize(path string, now time.Time) (*domain.NormalizedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewFormatError(ErrUnreadableFile, path, err.Error())
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, NewFormatError(ErrUnreadableFile, path, err.Error())
	}

	if records, ok := parsePerSale(rows); ok {
		return &domain.NormalizedFile{Records: records, Schema: domain.SchemaPerSale}, nil
	}

	records, ok := parseAggregated(rows, now)
	if !ok {
		return nil, NewFormatError(ErrUnknownFormat, path,
			"o arquivo não corresponde ao contrato de 9 colunas nem ao formato agregado")
	}

	return &domain.NormalizedFile{Records: records, Schema: domain.SchemaAggregated}, nil
}

// parsePerSale tenta o contrato principal: todas as linhas com exatamente 9
// colunas e sem linha de cabeçalho. Valores ilegíveis em campos individuais
// viram nil e ficam por conta do filtro de qualidade; só a estrutura derruba a
// tentativa.
func parsePerSale(rows [][]string) ([]*domain.SalesRecord, bool) {
	if len(rows) == 0 {
		return []*domain.SalesRecord{}, true
	}

	if looksLikeHeader(rows[0]) {
		return nil, false
	}

	for _, row := range rows {
		if len(row) != expectedColumns {
			return nil, false
		}
	}

	records := make([]*domain.SalesRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.SalesRecord{
			SaleTime:        parseSaleTime(row[colSaleTime]),
			AssetID:         strings.TrimSpace(row[colAssetID]),
			AssetTitle:      strings.TrimSpace(row[colAssetTitle]),
			LicensePlan:     normalizeCategory(row[colLicensePlan]),
			RoyaltyUSD:      parseAmount(row[colRoyaltyUSD]),
			MediaType:       normalizeCategory(row[colMediaType]),
			Filename:        strings.TrimSpace(row[colFilename]),
			ContributorName: normalizeCategory(row[colContributorName]),
			SizeLabel:       normalizeCategory(row[colSizeLabel]),
		})
	}

	return records, true
}

// parseAggregated tenta o formato alternativo: cabeçalho com Title/Asset ID/
// Sales/Revenue e uma linha por ativo. Cada linha agregada é expandida em N
// registros sintéticos, dividindo a receita igualmente entre as vendas. Como o
// formato não traz data por venda, o horário de ingestão entra como marcador.
func parseAggregated(rows [][]string, now time.Time) ([]*domain.SalesRecord, bool) {
	if len(rows) < 1 {
		return nil, false
	}

	index := headerIndex(rows[0])
	for _, col := range aggregatedColumns {
		if _, ok := index[col]; !ok {
			return nil, false
		}
	}

	saleTime := now.UTC()
	records := make([]*domain.SalesRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		title := strings.TrimSpace(cell(row, index["title"]))
		assetID := strings.TrimSpace(cell(row, index["asset id"]))

		salesCount, err := strconv.Atoi(strings.TrimSpace(cell(row, index["sales"])))
		if err != nil || salesCount <= 0 {
			continue
		}

		revenue := parseAmount(cell(row, index["revenue"]))
		var perSale *decimal.Decimal
		if revenue != nil {
			split := revenue.Div(decimal.NewFromInt(int64(salesCount)))
			perSale = &split
		}

		for i := 0; i < salesCount; i++ {
			t := saleTime
			records = append(records, &domain.SalesRecord{
				SaleTime:        &t,
				AssetID:         assetID,
				AssetTitle:      title,
				LicensePlan:     domain.LicenseCustom,
				RoyaltyUSD:      perSale,
				MediaType:       domain.MediaPhotos,
				Filename:        title,
				ContributorName: "user",
				SizeLabel:       "standard",
			})
		}
	}

	return records, true
}

// looksLikeHeader detecta a linha de cabeçalho do formato agregado para que o
// contrato sem cabeçalho não a engula como dado
func looksLikeHeader(row []string) bool {
	for _, field := range row {
		name := strings.ToLower(strings.TrimSpace(field))
		for _, col := range aggregatedColumns {
			if name == col {
				return true
			}
		}
	}
	return false
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, field := range header {
		index[strings.ToLower(strings.TrimSpace(field))] = i
	}
	return index
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseAmount normaliza um valor monetário em texto livre: remove símbolos e
// códigos de moeda, remove espaços, troca vírgula decimal por ponto e converte.
// Valores ilegíveis viram nil (ausente), nunca zero.
func parseAmount(raw string) *decimal.Decimal {
	cleaned := currencyTokens.ReplaceAllString(raw, "")
	cleaned = whitespace.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return nil
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}

	return &amount
}

// parseSaleTime converte o timestamp da venda para UTC; ilegível vira nil
func parseSaleTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	for _, layout := range saleTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	return nil
}

// normalizeCategory apara e coloca em minúsculas os campos de categoria para
// que o agrupamento seja consistente. Valores fora das listas conhecidas não
// são rejeitados aqui; apenas formam seu próprio grupo nas agregações.
func normalizeCategory(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
