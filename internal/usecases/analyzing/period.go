package analyzing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

// Nomes de meses para o rótulo humano do período
var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// ValidatePeriod deriva o período da análise a partir das datas de venda.
// Política: nunca rejeita o arquivo por causa do período. Com exatamente um mês
// presente, usa esse mês; com vários meses, usa o primeiro encontrado; sem
// nenhuma data utilizável, usa o mês do processamento. O script autônomo
// original rejeitava exportações multi-mês; o serviço relaxou a regra para não
// recusar uploads legítimos do formato agregado, cujas datas são sintéticas.
func (s *Service) ValidatePeriod(records []*domain.SalesRecord, now time.Time) (string, string) {
	seen := make(map[string]bool)
	months := make([]time.Time, 0, 1)

	for _, record := range records {
		if record.SaleTime == nil {
			continue
		}
		key := record.SaleTime.Format("2006-01")
		if !seen[key] {
			seen[key] = true
			months = append(months, *record.SaleTime)
		}
	}

	if len(months) == 0 {
		return periodOf(now)
	}

	if len(months) > 1 {
		logrus.WithFields(logrus.Fields{
			"months_found": len(months),
			"month_used":   months[0].Format("2006-01"),
		}).Warn("analise: exportação com mais de um mês, usando o primeiro encontrado")
	}

	return periodOf(months[0])
}

// periodOf devolve a chave canônica YYYY-MM-01 e o rótulo humano do mês
func periodOf(t time.Time) (string, string) {
	label := fmt.Sprintf("%s %d", monthNames[t.Month()], t.Year())
	return utils.PeriodKeyOf(t), label
}
