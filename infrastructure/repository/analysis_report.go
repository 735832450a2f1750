package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stockpeak/stock-analytics-api/infrastructure/database/postgres"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

const (
	analysisReportsTable = "analysis_reports ar"
)

type AnalysisReportRepository interface {
	GetBySellerAndPeriod(sellerID int, period string) (*domain.AnalysisReportEntry, error)
	GetByExternalID(externalID string) (*domain.AnalysisReportEntry, error)
	ListBySeller(sellerID int) ([]*domain.AnalysisReportEntry, error)
	SaveOrUpdate(entry *domain.AnalysisReportEntry) error
	DeleteOlderThan(months int) (int64, error)
}

type analysisReportRepository struct {
	conn *postgres.Connection
}

func NewAnalysisReportRepository(conn *postgres.Connection) AnalysisReportRepository {
	return &analysisReportRepository{
		conn: conn,
	}
}

func (r *analysisReportRepository) GetBySellerAndPeriod(sellerID int, period string) (*domain.AnalysisReportEntry, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.external_id, ar.seller_id, ar.period, ar.result, ar.report_text, ar.created_at, ar.updated_at").
		From(analysisReportsTable).
		Where(squirrel.Eq{"ar.seller_id": sellerID, "ar.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear análise: %w", err)
	}

	return entry, nil
}

func (r *analysisReportRepository) GetByExternalID(externalID string) (*domain.AnalysisReportEntry, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.external_id, ar.seller_id, ar.period, ar.result, ar.report_text, ar.created_at, ar.updated_at").
		From(analysisReportsTable).
		Where(squirrel.Eq{"ar.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear análise: %w", err)
	}

	return entry, nil
}

func (r *analysisReportRepository) ListBySeller(sellerID int) ([]*domain.AnalysisReportEntry, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.external_id, ar.seller_id, ar.period, ar.result, ar.report_text, ar.created_at, ar.updated_at").
		From(analysisReportsTable).
		Where(squirrel.Eq{"ar.seller_id": sellerID}).
		OrderBy("ar.period DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AnalysisReportEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear análises: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// SaveOrUpdate grava a análise do vendedor para o período. Reprocessar o
// mesmo mês substitui a análise anterior.
func (r *analysisReportRepository) SaveOrUpdate(entry *domain.AnalysisReportEntry) error {
	var resultJSON []byte
	var err error

	if entry.Result != nil {
		resultJSON, err = json.Marshal(entry.Result)
		if err != nil {
			return fmt.Errorf("erro ao serializar resultado para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("analysis_reports").
		Columns("external_id", "seller_id", "period", "result", "report_text").
		Values(
			entry.ExternalID,
			entry.SellerID,
			entry.Period,
			resultJSON,
			entry.ReportText,
		).
		Suffix(`
			ON CONFLICT (seller_id, period) DO UPDATE SET
				external_id = EXCLUDED.external_id,
				result = EXCLUDED.result,
				report_text = EXCLUDED.report_text,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove análises de períodos anteriores ao corte de retenção.
// O período é a chave canônica YYYY-MM-01, então a comparação lexicográfica
// equivale à cronológica.
func (r *analysisReportRepository) DeleteOlderThan(months int) (int64, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
	cutoffPeriod := utils.PeriodKeyOf(cutoff)

	query, args, err := squirrel.
		Delete("analysis_reports").
		Where(squirrel.Lt{"period": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analysisReportRepository) scanEntry(row *sql.Row) (*domain.AnalysisReportEntry, error) {
	entry := &domain.AnalysisReportEntry{}
	var resultJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.ExternalID,
		&entry.SellerID,
		&entry.Period,
		&resultJSON,
		&entry.ReportText,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resultJSON != nil {
		result := &domain.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		entry.Result = result
	}

	return entry, nil
}

func (r *analysisReportRepository) scanEntryRows(rows *sql.Rows) (*domain.AnalysisReportEntry, error) {
	entry := &domain.AnalysisReportEntry{}
	var resultJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.ExternalID,
		&entry.SellerID,
		&entry.Period,
		&resultJSON,
		&entry.ReportText,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resultJSON != nil {
		result := &domain.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		entry.Result = result
	}

	return entry, nil
}
