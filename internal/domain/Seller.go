package domain

import "time"

// Tarifas disponíveis para vendedores. A tarifa decide a profundidade do
// relatório (top-5 no plano gratuito, top-10 no pago).
const (
	TariffFree = "free"
	TariffPro  = "pro"
)

// Seller representa um vendedor de conteúdo de stock atendido pelo produto.
// Os campos numéricos alimentam ProcessingInputs na hora da análise.
type Seller struct {
	ID             int        `json:"id"`
	ExternalID     string     `json:"external_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Tariff         string     `json:"tariff"`
	PortfolioSize  int        `json:"portfolio_size"`
	UploadLimit    int        `json:"upload_limit"`
	MonthlyUploads int        `json:"monthly_uploads"`
	AcceptanceRate float64    `json:"acceptance_rate"`
	Active         bool       `json:"active"`
	Deleted        bool       `json:"deleted"`
	DeletedAt      *time.Time `json:"deleted_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Inputs monta os ProcessingInputs do vendedor para o pipeline de análise
func (s *Seller) Inputs() ProcessingInputs {
	return ProcessingInputs{
		PortfolioSize:  s.PortfolioSize,
		UploadLimit:    s.UploadLimit,
		MonthlyUploads: s.MonthlyUploads,
		AcceptanceRate: s.AcceptanceRate,
	}
}

// ReportTopN devolve quantas linhas de ranking entram no relatório do vendedor
func (s *Seller) ReportTopN() int {
	if s.Tariff == TariffPro {
		return 10
	}
	return 5
}

// UpdateSellerRequest é o payload parcial de atualização de vendedor
type UpdateSellerRequest struct {
	ID             int      `json:"id"`
	Name           *string  `json:"name"`
	Email          *string  `json:"email"`
	Tariff         *string  `json:"tariff"`
	PortfolioSize  *int     `json:"portfolio_size"`
	UploadLimit    *int     `json:"upload_limit"`
	MonthlyUploads *int     `json:"monthly_uploads"`
	AcceptanceRate *float64 `json:"acceptance_rate"`
	Active         *bool    `json:"active"`
	Deleted        *bool    `json:"deleted"`
}
