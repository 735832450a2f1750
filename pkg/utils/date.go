package utils

import (
	"fmt"
	"time"
)

// PeriodKeyLayout é a chave canônica de período usada em análises persistidas
const PeriodKeyLayout = "2006-01-02"

// ParsePeriodKey valida e converte uma chave de período YYYY-MM-01
func ParsePeriodKey(period string) (time.Time, error) {
	t, err := time.Parse(PeriodKeyLayout, period)
	if err != nil {
		return time.Time{}, err
	}

	if t.Day() != 1 {
		return time.Time{}, fmt.Errorf("chave de período deve apontar para o primeiro dia do mês: %s", period)
	}

	return t, nil
}

// PeriodKeyOf devolve a chave canônica do mês de uma data
func PeriodKeyOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-01", t.Year(), int(t.Month()))
}
