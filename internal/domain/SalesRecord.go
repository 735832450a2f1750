package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceSchema identifica qual dos formatos de exportação foi detectado na ingestão
type SourceSchema string

const (
	// SchemaPerSale é o contrato principal: 9 colunas sem cabeçalho, uma linha por venda
	SchemaPerSale SourceSchema = "per_sale"
	// SchemaAggregated é o formato alternativo com cabeçalho: uma linha por ativo,
	// com contagem de vendas e receita agregadas
	SchemaAggregated SourceSchema = "aggregated"
)

// Valores canônicos de license_plan e media_type. Valores fora da lista não são
// rejeitados na ingestão; apenas formam seu próprio grupo nas agregações.
const (
	LicenseCustom       = "custom"
	LicenseSubscription = "subscription"

	MediaPhotos        = "photos"
	MediaVideos        = "videos"
	MediaIllustrations = "illustrations"
)

// SalesRecord representa uma linha normalizada do arquivo de vendas.
// Campos não interpretáveis viram nil (ausentes), nunca zero.
type SalesRecord struct {
	SaleTime        *time.Time       `json:"sale_time"`
	AssetID         string           `json:"asset_id"`
	AssetTitle      string           `json:"asset_title"`
	LicensePlan     string           `json:"license_plan"`
	RoyaltyUSD      *decimal.Decimal `json:"royalty_usd"`
	MediaType       string           `json:"media_type"`
	Filename        string           `json:"filename"`
	ContributorName string           `json:"contributor_name"`
	SizeLabel       string           `json:"size_label"`
}

// Broken indica se o registro não pode entrar no cálculo de métricas.
// Um registro sem data de venda, sem asset_id ou sem valor de royalty é
// contabilizado apenas na taxa de linhas quebradas.
func (r *SalesRecord) Broken() bool {
	return r.SaleTime == nil || r.RoyaltyUSD == nil || r.AssetID == ""
}

// NormalizedFile é o resultado da ingestão: registros normalizados mais a tag
// do schema detectado, carregada explicitamente para as camadas seguintes.
type NormalizedFile struct {
	Records []*SalesRecord `json:"records"`
	Schema  SourceSchema   `json:"schema"`
}
