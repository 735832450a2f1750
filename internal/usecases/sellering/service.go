package sellering

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/infrastructure/repository"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/apiErrors"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

// SellerService gerencia os perfis de vendedores. Os números do perfil
// (tamanho do portfólio, limites, taxa de aceitação) alimentam os
// ProcessingInputs de cada análise.
type SellerService interface {
	CreateSeller(seller *domain.Seller) (*domain.Seller, error)
	UpdateSeller(req *domain.UpdateSellerRequest) error
	GetSellerByID(sellerID int) (*domain.Seller, error)
	GetSellerByExternalID(externalID string) (*domain.Seller, error)
	ListSellers() ([]*domain.Seller, error)
}

type Service struct {
	sellerRepo repository.SellerRepository
}

func NewService(sellerRepo repository.SellerRepository) SellerService {
	return &Service{
		sellerRepo: sellerRepo,
	}
}

func (s *Service) CreateSeller(seller *domain.Seller) (*domain.Seller, error) {
	if seller.Name == "" {
		return nil, NewSellerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do vendedor é obrigatório")
	}

	if seller.Tariff == "" {
		seller.Tariff = domain.TariffFree
	}
	if seller.Tariff != domain.TariffFree && seller.Tariff != domain.TariffPro {
		return nil, NewSellerError(ErrInvalidTariff, apiErrors.ErrInvalidRequest, seller.Tariff)
	}

	externalID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSellerError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	seller.ExternalID = externalID
	seller.Active = true

	created, err := s.sellerRepo.CreateSeller(seller)
	if err != nil {
		return nil, NewSellerError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar vendedor")
	}

	logrus.WithFields(logrus.Fields{
		"seller_id":   created.ID,
		"external_id": created.ExternalID,
		"tariff":      created.Tariff,
	}).Info("vendedores: vendedor criado")

	return created, nil
}

func (s *Service) UpdateSeller(req *domain.UpdateSellerRequest) error {
	if req.ID == 0 {
		return NewSellerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	seller, err := s.sellerRepo.GetSellerByID(req.ID)
	if err != nil {
		return NewSellerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}
	if seller == nil {
		return NewSellerErrorWithID(ErrSellerNotFound, apiErrors.ErrSellerNotFound, req.ID, "")
	}

	if req.Name != nil {
		seller.Name = *req.Name
	}

	if req.Email != nil {
		seller.Email = *req.Email
	}

	if req.Tariff != nil {
		if *req.Tariff != domain.TariffFree && *req.Tariff != domain.TariffPro {
			return NewSellerErrorWithID(ErrInvalidTariff, apiErrors.ErrInvalidRequest, req.ID, *req.Tariff)
		}
		seller.Tariff = *req.Tariff
	}

	if req.PortfolioSize != nil {
		seller.PortfolioSize = *req.PortfolioSize
	}

	if req.UploadLimit != nil {
		seller.UploadLimit = *req.UploadLimit
	}

	if req.MonthlyUploads != nil {
		seller.MonthlyUploads = *req.MonthlyUploads
	}

	if req.AcceptanceRate != nil {
		seller.AcceptanceRate = *req.AcceptanceRate
	}

	if req.Active != nil {
		seller.Active = *req.Active
	}

	if req.Deleted != nil {
		now := time.Now()
		seller.Deleted = *req.Deleted
		seller.DeletedAt = &now
	}

	if err := s.sellerRepo.UpdateSeller(seller); err != nil {
		return NewSellerErrorWithID(err, apiErrors.ErrDatabaseOperation, req.ID, "Erro ao atualizar vendedor")
	}

	return nil
}

func (s *Service) GetSellerByID(sellerID int) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetSellerByID(sellerID)
	if err != nil {
		return nil, NewSellerErrorWithID(err, apiErrors.ErrDatabaseOperation, sellerID, "Erro ao buscar vendedor")
	}
	if seller == nil {
		return nil, NewSellerErrorWithID(ErrSellerNotFound, apiErrors.ErrSellerNotFound, sellerID, "")
	}

	return seller, nil
}

func (s *Service) GetSellerByExternalID(externalID string) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetSellerByExternalID(externalID)
	if err != nil {
		return nil, NewSellerError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendedor")
	}
	if seller == nil {
		return nil, NewSellerError(ErrSellerNotFound, apiErrors.ErrSellerNotFound, externalID)
	}

	return seller, nil
}

func (s *Service) ListSellers() ([]*domain.Seller, error) {
	sellers, err := s.sellerRepo.ListSellers()
	if err != nil {
		return nil, NewSellerError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores")
	}

	return sellers, nil
}
