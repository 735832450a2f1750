// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stockpeak/stock-analytics-api/infrastructure/database/postgres"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

const (
	sellersTable = "sellers s"
)

type SellerRepository interface {
	CreateSeller(seller *domain.Seller) (*domain.Seller, error)
	UpdateSeller(seller *domain.Seller) error
	GetSellerByID(sellerID int) (*domain.Seller, error)
	GetSellerByExternalID(externalID string) (*domain.Seller, error)
	ListSellers() ([]*domain.Seller, error)
}

type sellerRepository struct {
	conn *postgres.Connection
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func (r *sellerRepository) CreateSeller(seller *domain.Seller) (*domain.Seller, error) {
	queryBuilder := squirrel.
		Insert("sellers").
		Columns(
			"external_id",
			"name",
			"email",
			"tariff",
			"portfolio_size",
			"upload_limit",
			"monthly_uploads",
			"acceptance_rate",
			"active",
		).
		Values(
			seller.ExternalID,
			seller.Name,
			seller.Email,
			seller.Tariff,
			seller.PortfolioSize,
			seller.UploadLimit,
			seller.MonthlyUploads,
			seller.AcceptanceRate,
			seller.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sellersSQL, sellersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(sellersSQL, sellersArgs...).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return seller, nil
}

func (r *sellerRepository) UpdateSeller(seller *domain.Seller) error {
	queryBuilder := squirrel.
		Update("sellers").
		Set("name", seller.Name).
		Set("email", seller.Email).
		Set("tariff", seller.Tariff).
		Set("portfolio_size", seller.PortfolioSize).
		Set("upload_limit", seller.UploadLimit).
		Set("monthly_uploads", seller.MonthlyUploads).
		Set("acceptance_rate", seller.AcceptanceRate).
		Set("active", seller.Active).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": seller.ID})

	if seller.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", seller.DeletedAt)
	}

	sellersSQL, sellersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sellersSQL, sellersArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *sellerRepository) GetSellerByID(sellerID int) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select(sellerColumns()...).
		From(sellersTable).
		Where(squirrel.Eq{"s.id": sellerID, "s.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	seller, err := r.scanSeller(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) GetSellerByExternalID(externalID string) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select(sellerColumns()...).
		From(sellersTable).
		Where(squirrel.Eq{"s.external_id": externalID, "s.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	seller, err := r.scanSeller(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) ListSellers() ([]*domain.Seller, error) {
	query, args, err := squirrel.
		Select(sellerColumns()...).
		From(sellersTable).
		Where(squirrel.Eq{"s.deleted": false}).
		OrderBy("s.name ASC").
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

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller, err := r.scanSellerRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedores: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sellers, nil
}

func sellerColumns() []string {
	return []string{
		"s.id",
		"s.external_id",
		"s.name",
		"s.email",
		"s.tariff",
		"s.portfolio_size",
		"s.upload_limit",
		"s.monthly_uploads",
		"s.acceptance_rate",
		"s.active",
		"s.created_at",
		"s.updated_at",
	}
}

func (r *sellerRepository) scanSeller(row *sql.Row) (*domain.Seller, error) {
	seller := &domain.Seller{}

	err := row.Scan(
		&seller.ID,
		&seller.ExternalID,
		&seller.Name,
		&seller.Email,
		&seller.Tariff,
		&seller.PortfolioSize,
		&seller.UploadLimit,
		&seller.MonthlyUploads,
		&seller.AcceptanceRate,
		&seller.Active,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return seller, nil
}

func (r *sellerRepository) scanSellerRows(rows *sql.Rows) (*domain.Seller, error) {
	seller := &domain.Seller{}

	err := rows.Scan(
		&seller.ID,
		&seller.ExternalID,
		&seller.Name,
		&seller.Email,
		&seller.Tariff,
		&seller.PortfolioSize,
		&seller.UploadLimit,
		&seller.MonthlyUploads,
		&seller.AcceptanceRate,
		&seller.Active,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return seller, nil
}
