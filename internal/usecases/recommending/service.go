package recommending

import (
	"errors"
	"fmt"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

// ErrUnknownLexiconKey indica uma faixa sem texto correspondente no léxico.
// O gerador de relatório falha alto nesse caso em vez de omitir a seção.
var ErrUnknownLexiconKey = errors.New("chave de recomendação sem texto no léxico")

// Advice é a recomendação resolvida de um KPI: a chave da faixa e o texto
type Advice struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Set reúne as quatro recomendações de um relatório
type Set struct {
	Portfolio   Advice `json:"portfolio"`
	NewWorks    Advice `json:"new_works"`
	UploadLimit Advice `json:"upload_limit"`
	Acceptance  Advice `json:"acceptance"`
}

// Service seleciona a faixa de cada KPI por pontos de corte fixos. As
// fronteiras são regra de negócio calibrada e precisam ser preservadas
// exatamente, inclusive as duas lacunas conhecidas (ver comentários).
type Service struct{}

// NewService cria o serviço de recomendações
func NewService() *Service {
	return &Service{}
}

// PortfolioRateKey classifica o percentual do portfólio vendido no período.
// Atenção: há uma lacuna intencional-mas-suspeita entre 2 e 2.01 herdada da
// regra original; valores nela caem no else final. Pendente de esclarecimento
// do produto, não "corrigir" adivinhando a intenção.
func (s *Service) PortfolioRateKey(rate float64) string {
	switch {
	case rate < 1:
		return PortfolioRateVeryLow
	case rate >= 1 && rate <= 2:
		return PortfolioRateLow
	case rate >= 2.01 && rate <= 3:
		return PortfolioRateGood
	case rate > 3 && rate <= 5:
		return PortfolioRateVeryGood
	default:
		return PortfolioRateExcellent
	}
}

// NewWorkRateKey classifica a participação das obras novas nas vendas.
// 100% tem faixa própria: portfólio jovem demais para conclusões.
func (s *Service) NewWorkRateKey(rate float64) string {
	switch {
	case rate == 100:
		return NewWorkRateFull
	case rate >= 30:
		return NewWorkRateSuper
	case rate >= 20 && rate < 30:
		return NewWorkRateExcellent
	case rate >= 10 && rate < 20:
		return NewWorkRateGood
	default:
		return NewWorkRateLow
	}
}

// LimitUsageKey classifica o uso do limite de envios. As fronteiras 60/61 e
// 95/96 vêm da regra original com lacunas; valores nelas caem no else final.
func (s *Service) LimitUsageKey(usage float64) string {
	switch {
	case usage <= 30:
		return LimitUsageVeryLow
	case usage > 30 && usage <= 60:
		return LimitUsageLow
	case usage >= 61 && usage <= 80:
		return LimitUsageNormal
	case usage >= 81 && usage <= 95:
		return LimitUsageGood
	default:
		return LimitUsageExcellent
	}
}

// AcceptanceRateKey classifica a taxa de aceitação informada pelo vendedor
func (s *Service) AcceptanceRateKey(rate float64) string {
	switch {
	case rate <= 30:
		return AcceptanceRateVeryLow
	case rate >= 31 && rate <= 50:
		return AcceptanceRateLow
	case rate > 50 && rate <= 55:
		return AcceptanceRateNormal
	case rate > 55 && rate <= 65:
		return AcceptanceRateGood
	default:
		return AcceptanceRateExcellent
	}
}

// Evaluate resolve as quatro recomendações de um resultado de análise.
// Chave sem texto no léxico é erro, nunca seção omitida em silêncio.
func (s *Service) Evaluate(result *domain.AnalysisResult) (*Set, error) {
	portfolio, err := resolve(s.PortfolioRateKey(result.PortfolioSoldPercent))
	if err != nil {
		return nil, err
	}

	newWorks, err := resolve(s.NewWorkRateKey(result.NewWorksSalesPercent))
	if err != nil {
		return nil, err
	}

	uploadLimit, err := resolve(s.LimitUsageKey(result.UploadLimitUsage))
	if err != nil {
		return nil, err
	}

	acceptance, err := resolve(s.AcceptanceRateKey(result.AcceptanceRate))
	if err != nil {
		return nil, err
	}

	return &Set{
		Portfolio:   portfolio,
		NewWorks:    newWorks,
		UploadLimit: uploadLimit,
		Acceptance:  acceptance,
	}, nil
}

func resolve(key string) (Advice, error) {
	text, ok := Lexicon[key]
	if !ok {
		return Advice{}, fmt.Errorf("%w: %s", ErrUnknownLexiconKey, key)
	}
	return Advice{Key: key, Text: text}, nil
}
