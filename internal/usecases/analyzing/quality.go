package analyzing

import (
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

// FilterBroken separa os registros quebrados dos utilizáveis e calcula a taxa
// de linhas quebradas. Um registro é quebrado quando falta data de venda,
// asset_id ou valor de royalty. Acima do limite configurado a análise inteira
// é abortada: métricas parciais sobre um arquivo majoritariamente quebrado
// enganariam o vendedor.
func (s *Service) FilterBroken(records []*domain.SalesRecord) ([]*domain.SalesRecord, int, float64, error) {
	total := len(records)
	if total == 0 {
		return []*domain.SalesRecord{}, 0, 0.0, nil
	}

	clean := make([]*domain.SalesRecord, 0, total)
	brokenRows := 0

	for _, record := range records {
		if record.Broken() {
			brokenRows++
			continue
		}
		clean = append(clean, record)
	}

	brokenPct := utils.RoundWithTwoDecimalPlace(float64(brokenRows) / float64(total) * 100)

	if brokenPct > s.thresholdPct {
		return nil, brokenRows, brokenPct, &DataQualityError{
			BrokenPct:    brokenPct,
			ThresholdPct: s.thresholdPct,
			RowsTotal:    total,
			BrokenRows:   brokenRows,
		}
	}

	return clean, brokenRows, brokenPct, nil
}
