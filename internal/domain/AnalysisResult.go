package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessingInputs são os números de contexto fornecidos pelo chamador.
// Não derivam do arquivo e não são validados contra ele.
type ProcessingInputs struct {
	PortfolioSize  int     `json:"portfolio_size"`
	UploadLimit    int     `json:"upload_limit"`
	MonthlyUploads int     `json:"monthly_uploads"`
	AcceptanceRate float64 `json:"acceptance_rate"`
}

// AggregateRow é uma linha de agregação por categoria (license_plan ou media_type)
type AggregateRow struct {
	Category   string          `json:"category"`
	SalesCount int             `json:"sales_count"`
	RevenueUSD decimal.Decimal `json:"revenue_usd"`
}

// AssetRank é uma linha dos rankings de ativos (por receita ou por vendas)
type AssetRank struct {
	AssetID      string          `json:"asset_id"`
	AssetTitle   string          `json:"asset_title"`
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// AnalysisResult é o agregado final produzido pelo pipeline de análise.
// Imutável depois de produzido; a camada chamadora é dona da persistência.
type AnalysisResult struct {
	// Identidade do período
	PeriodMonth string `json:"period_month"` // chave canônica YYYY-MM-01
	PeriodLabel string `json:"period_label"` // rótulo humano, ex.: "Julho 2025"

	// Contagem de linhas
	RowsTotal  int     `json:"rows_total"`
	BrokenRows int     `json:"broken_rows"`
	BrokenPct  float64 `json:"broken_pct"`
	RowsUsed   int     `json:"rows_used"`

	// KPIs escalares
	TotalRevenueUSD      decimal.Decimal `json:"total_revenue_usd"`
	UniqueAssetsSold     int             `json:"unique_assets_sold"`
	AvgRevenuePerSale    decimal.Decimal `json:"avg_revenue_per_sale"`
	PortfolioSoldPercent float64         `json:"portfolio_sold_percent"`
	NewWorksSalesPercent float64         `json:"new_works_sales_percent"`
	UploadLimitUsage     float64         `json:"upload_limit_usage"`
	AcceptanceRate       float64         `json:"acceptance_rate"` // repasse de ProcessingInputs

	// Intervalo de datas das vendas válidas
	DateMinUTC *time.Time `json:"date_min_utc"`
	DateMaxUTC *time.Time `json:"date_max_utc"`

	// Agregações por categoria, ordenadas por receita desc e contagem desc
	SalesByLicense   []AggregateRow `json:"sales_by_license"`
	SalesByMediaType []AggregateRow `json:"sales_by_media_type"`

	// Rankings de ativos (no máximo 10 linhas cada)
	Top10ByRevenue []AssetRank `json:"top10_by_revenue"`
	Top10BySales   []AssetRank `json:"top10_by_sales"`

	// Schema detectado na ingestão
	SourceSchema SourceSchema `json:"source_schema"`
}

// AnalysisReportEntry representa uma análise persistida no banco para um vendedor
type AnalysisReportEntry struct {
	ID         int64           `json:"id"`
	ExternalID string          `json:"external_id"`
	SellerID   int             `json:"seller_id"`
	Period     string          `json:"period"` // chave canônica YYYY-MM-01
	Result     *AnalysisResult `json:"result"`
	ReportText string          `json:"report_text"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
