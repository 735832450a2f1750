package reporting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/recommending"
)

// Erros do gerador de relatório. Falha aqui é sempre alta: uma seção ausente
// em silêncio esconderia do vendedor parte da análise.
var (
	ErrNilResult          = errors.New("resultado de análise ausente")
	ErrNilRecommendations = errors.New("recomendações ausentes para o relatório")
	ErrEmptyAdvice        = errors.New("recomendação sem texto")
)

// Service monta o texto final do relatório. Passo puramente determinístico de
// formatação, sem lógica de negócio.
type Service struct{}

// NewService cria o gerador de relatórios
func NewService() *Service {
	return &Service{}
}

// Render monta o relatório formatado a partir do resultado e das
// recomendações. topN controla a profundidade do ranking de ativos (5 no plano
// gratuito, 10 no pago).
func (s *Service) Render(result *domain.AnalysisResult, recs *recommending.Set, topN int) (string, error) {
	if result == nil {
		return "", ErrNilResult
	}
	if recs == nil {
		return "", ErrNilRecommendations
	}
	for _, advice := range []recommending.Advice{recs.Portfolio, recs.NewWorks, recs.UploadLimit, recs.Acceptance} {
		if advice.Text == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyAdvice, advice.Key)
		}
	}

	if topN <= 0 {
		topN = 5
	}

	var b strings.Builder

	fmt.Fprintf(&b, "📊 Relatório de %s\n\n", result.PeriodLabel)

	b.WriteString("Indicadores principais:\n")
	fmt.Fprintf(&b, "• Vendas: %d\n", result.RowsUsed)
	fmt.Fprintf(&b, "• Receita: $%s\n", result.TotalRevenueUSD.StringFixed(2))
	fmt.Fprintf(&b, "• Ativos únicos vendidos: %d\n", result.UniqueAssetsSold)
	fmt.Fprintf(&b, "• Receita média por venda: $%s\n", result.AvgRevenuePerSale.StringFixed(4))
	fmt.Fprintf(&b, "• Portfólio vendido: %.2f%%\n", result.PortfolioSoldPercent)
	fmt.Fprintf(&b, "• Participação de obras novas: %.2f%%\n", result.NewWorksSalesPercent)

	b.WriteString("\nIndicadores complementares:\n")
	fmt.Fprintf(&b, "• Taxa de aceitação: %.2f%%\n", result.AcceptanceRate)
	fmt.Fprintf(&b, "• Uso do limite de envios: %.2f%%\n", result.UploadLimitUsage)

	b.WriteString("\nVendas por tipo de conteúdo:\n")
	writeAggregateRows(&b, result.SalesByMediaType)

	b.WriteString("\nVendas por licença:\n")
	writeAggregateRows(&b, result.SalesByLicense)

	if len(result.Top10ByRevenue) > 0 {
		fmt.Fprintf(&b, "\nTop-%d ativos por receita:\n", topN)
		for i, rank := range result.Top10ByRevenue {
			if i >= topN {
				break
			}
			fmt.Fprintf(&b, "%d. %s — $%s / %d vendas\n",
				i+1, rank.AssetTitle, rank.TotalRevenue.StringFixed(2), rank.TotalSales)
		}
	}

	b.WriteString("\nAnálise dos indicadores:\n")
	fmt.Fprintf(&b, "\n📈 Portfólio: %s\n", recs.Portfolio.Text)
	fmt.Fprintf(&b, "\n🆕 Obras novas: %s\n", recs.NewWorks.Text)
	fmt.Fprintf(&b, "\n📤 Envios: %s\n", recs.UploadLimit.Text)
	fmt.Fprintf(&b, "\n✅ Aceitação: %s\n", recs.Acceptance.Text)

	b.WriteString("\nConclusão:\n")
	b.WriteString("Este foi o relatório completo do seu portfólio no período selecionado. ")
	b.WriteString("Para analisar outro mês, confira seus limites no perfil e envie um novo arquivo de vendas. ")
	b.WriteString("Acompanhe a estatística: em alguns meses os primeiros indicadores objetivos mostram se algo precisa ser ajustado no trabalho.\n")

	return b.String(), nil
}

func writeAggregateRows(b *strings.Builder, rows []domain.AggregateRow) {
	if len(rows) == 0 {
		b.WriteString("• Dados indisponíveis\n")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(b, "• %s: %d vendas / $%s\n",
			capitalize(row.Category), row.SalesCount, row.RevenueUSD.StringFixed(2))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
