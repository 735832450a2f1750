package analyzing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/internal/config"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

// Analyzer é o contrato do pipeline de análise de vendas
type Analyzer interface {
	Analyze(filePath string, inputs domain.ProcessingInputs, now time.Time) (*domain.AnalysisResult, error)
}

// Service implementa o pipeline completo: ingestão, validação de período,
// filtro de qualidade e cálculo de métricas. O serviço não guarda estado entre
// invocações; cada análise é uma função pura de (arquivo, inputs, relógio).
type Service struct {
	thresholdPct       float64
	newWorksWindowDays int
	failOnEmpty        bool
}

// NewService cria o serviço de análise a partir da configuração
func NewService(cfg *config.Config) *Service {
	return &Service{
		thresholdPct:       cfg.Analysis.BrokenRowsThresholdPct,
		newWorksWindowDays: cfg.Analysis.NewWorksWindowDays,
		failOnEmpty:        cfg.Analysis.FailOnEmpty,
	}
}

// Analyze executa o pipeline sobre um arquivo de vendas. Erros de formato e de
// qualidade de dados sobem tipados para o chamador; não há retry interno.
func (s *Service) Analyze(filePath string, inputs domain.ProcessingInputs, now time.Time) (*domain.AnalysisResult, error) {
	normalized, err := s.Normalize(filePath, now)
	if err != nil {
		return nil, err
	}

	rowsTotal := len(normalized.Records)
	if rowsTotal == 0 && s.failOnEmpty {
		return nil, NewFormatError(ErrEmptyInput, filePath, "")
	}

	periodKey, periodLabel := s.ValidatePeriod(normalized.Records, now)

	clean, brokenRows, brokenPct, err := s.FilterBroken(normalized.Records)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file":        filePath,
			"rows_total":  rowsTotal,
			"broken_rows": brokenRows,
			"broken_pct":  brokenPct,
		}).Warn("analise: arquivo rejeitado pelo filtro de qualidade")
		return nil, err
	}

	result := s.ComputeMetrics(clean, inputs, now)
	result.PeriodMonth = periodKey
	result.PeriodLabel = periodLabel
	result.RowsTotal = rowsTotal
	result.BrokenRows = brokenRows
	result.BrokenPct = brokenPct
	result.SourceSchema = normalized.Schema

	logrus.WithFields(logrus.Fields{
		"file":          filePath,
		"schema":        result.SourceSchema,
		"period":        result.PeriodMonth,
		"rows_total":    result.RowsTotal,
		"rows_used":     result.RowsUsed,
		"broken_pct":    result.BrokenPct,
		"total_revenue": result.TotalRevenueUSD,
	}).Info("analise: arquivo processado com sucesso")

	return result, nil
}
