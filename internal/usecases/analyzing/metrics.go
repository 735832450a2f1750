package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

const topAssetsLimit = 10

// ComputeMetrics calcula os KPIs escalares, as agregações por categoria e os
// rankings de ativos sobre o conjunto limpo de registros. O relógio é injetado:
// a janela de obras novas é móvel e ancorada no momento do processamento, não
// no período do relatório.
func (s *Service) ComputeMetrics(
	clean []*domain.SalesRecord,
	inputs domain.ProcessingInputs,
	now time.Time,
) *domain.AnalysisResult {
	rowsUsed := len(clean)

	totalRevenue := decimal.Zero
	uniqueAssets := make(map[string]bool)
	var dateMin, dateMax *time.Time

	newWorksCutoff := now.UTC().AddDate(0, 0, -s.newWorksWindowDays)
	newWorksSales := 0

	for _, record := range clean {
		totalRevenue = totalRevenue.Add(*record.RoyaltyUSD)
		uniqueAssets[record.AssetID] = true

		if dateMin == nil || record.SaleTime.Before(*dateMin) {
			dateMin = record.SaleTime
		}
		if dateMax == nil || record.SaleTime.After(*dateMax) {
			dateMax = record.SaleTime
		}

		if record.SaleTime.After(newWorksCutoff) {
			newWorksSales++
		}
	}

	avgRevenuePerSale := decimal.Zero
	if rowsUsed > 0 {
		avgRevenuePerSale = totalRevenue.Div(decimal.NewFromInt(int64(rowsUsed))).Round(4)
	}

	portfolioSoldPercent := 0.0
	if inputs.PortfolioSize > 0 {
		portfolioSoldPercent = float64(len(uniqueAssets)) / float64(inputs.PortfolioSize) * 100
	}

	newWorksSalesPercent := 0.0
	if rowsUsed > 0 {
		newWorksSalesPercent = float64(newWorksSales) / float64(rowsUsed) * 100
	}

	uploadLimitUsage := 0.0
	if inputs.UploadLimit > 0 {
		uploadLimitUsage = float64(inputs.MonthlyUploads) / float64(inputs.UploadLimit) * 100
	}

	return &domain.AnalysisResult{
		RowsUsed:             rowsUsed,
		TotalRevenueUSD:      totalRevenue.Round(2),
		UniqueAssetsSold:     len(uniqueAssets),
		AvgRevenuePerSale:    avgRevenuePerSale,
		PortfolioSoldPercent: utils.RoundWithTwoDecimalPlace(portfolioSoldPercent),
		NewWorksSalesPercent: utils.RoundWithTwoDecimalPlace(newWorksSalesPercent),
		UploadLimitUsage:     utils.RoundWithTwoDecimalPlace(uploadLimitUsage),
		AcceptanceRate:       inputs.AcceptanceRate,
		DateMinUTC:           dateMin,
		DateMaxUTC:           dateMax,
		SalesByLicense:       aggregateByCategory(clean, func(r *domain.SalesRecord) string { return r.LicensePlan }),
		SalesByMediaType:     aggregateByCategory(clean, func(r *domain.SalesRecord) string { return r.MediaType }),
		Top10ByRevenue:       topAssets(clean, byRevenue),
		Top10BySales:         topAssets(clean, bySales),
	}
}

// aggregateByCategory agrupa os registros por uma categoria e ordena por
// receita decrescente, desempatando por contagem de vendas e por nome
func aggregateByCategory(records []*domain.SalesRecord, category func(*domain.SalesRecord) string) []domain.AggregateRow {
	groups := make(map[string]*domain.AggregateRow)

	for _, record := range records {
		key := category(record)
		row, ok := groups[key]
		if !ok {
			row = &domain.AggregateRow{Category: key, RevenueUSD: decimal.Zero}
			groups[key] = row
		}
		row.SalesCount++
		row.RevenueUSD = row.RevenueUSD.Add(*record.RoyaltyUSD)
	}

	rows := make([]domain.AggregateRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].RevenueUSD.Cmp(rows[j].RevenueUSD); cmp != 0 {
			return cmp > 0
		}
		if rows[i].SalesCount != rows[j].SalesCount {
			return rows[i].SalesCount > rows[j].SalesCount
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}

type rankOrder int

const (
	byRevenue rankOrder = iota
	bySales
)

// topAssets agrupa por (asset_id, asset_title), ordena pelo critério pedido e
// devolve no máximo as 10 primeiras linhas
func topAssets(records []*domain.SalesRecord, order rankOrder) []domain.AssetRank {
	type assetKey struct {
		id    string
		title string
	}

	groups := make(map[assetKey]*domain.AssetRank)
	for _, record := range records {
		key := assetKey{id: record.AssetID, title: record.AssetTitle}
		rank, ok := groups[key]
		if !ok {
			rank = &domain.AssetRank{
				AssetID:      record.AssetID,
				AssetTitle:   record.AssetTitle,
				TotalRevenue: decimal.Zero,
			}
			groups[key] = rank
		}
		rank.TotalSales++
		rank.TotalRevenue = rank.TotalRevenue.Add(*record.RoyaltyUSD)
	}

	ranks := make([]domain.AssetRank, 0, len(groups))
	for _, rank := range groups {
		ranks = append(ranks, *rank)
	}

	sort.Slice(ranks, func(i, j int) bool {
		revenueCmp := ranks[i].TotalRevenue.Cmp(ranks[j].TotalRevenue)
		salesDiff := ranks[i].TotalSales - ranks[j].TotalSales

		if order == byRevenue {
			if revenueCmp != 0 {
				return revenueCmp > 0
			}
			if salesDiff != 0 {
				return salesDiff > 0
			}
		} else {
			if salesDiff != 0 {
				return salesDiff > 0
			}
			if revenueCmp != 0 {
				return revenueCmp > 0
			}
		}
		return ranks[i].AssetID < ranks[j].AssetID
	})

	if len(ranks) > topAssetsLimit {
		ranks = ranks[:topAssetsLimit]
	}

	return ranks
}
