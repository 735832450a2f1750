package sellering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockpeak/stock-analytics-api/infrastructure/repository/mocks"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/pkg/apiErrors"
)

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestCreateSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("cria vendedor com tarifa padrão e external_id gerado", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateSeller(gomock.Any()).
			DoAndReturn(func(seller *domain.Seller) (*domain.Seller, error) {
				seller.ID = 7
				return seller, nil
			})

		created, err := service.CreateSeller(&domain.Seller{
			Name:          "Ana Fotógrafa",
			PortfolioSize: 120,
		})

		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, domain.TariffFree, created.Tariff)
		assert.NotEmpty(t, created.ExternalID)
		assert.True(t, created.Active)
	})

	t.Run("rejeita vendedor sem nome", func(t *testing.T) {
		_, err := service.CreateSeller(&domain.Seller{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		var sellerErr *SellerError
		require.ErrorAs(t, err, &sellerErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, sellerErr.Code)
	})

	t.Run("rejeita tarifa desconhecida", func(t *testing.T) {
		_, err := service.CreateSeller(&domain.Seller{Name: "Ana", Tariff: "platinum"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTariff)
	})
}

func TestUpdateSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("aplica apenas os campos presentes no payload", func(t *testing.T) {
		existing := &domain.Seller{
			ID:             3,
			Name:           "Ana",
			Email:          "ana@exemplo.com",
			Tariff:         domain.TariffFree,
			PortfolioSize:  100,
			AcceptanceRate: 40.0,
			Active:         true,
		}

		mockRepo.EXPECT().GetSellerByID(3).Return(existing, nil)

		var saved *domain.Seller
		mockRepo.EXPECT().
			UpdateSeller(gomock.Any()).
			DoAndReturn(func(seller *domain.Seller) error {
				saved = seller
				return nil
			})

		err := service.UpdateSeller(&domain.UpdateSellerRequest{
			ID:             3,
			Tariff:         stringPtr(domain.TariffPro),
			PortfolioSize:  intPtr(150),
			AcceptanceRate: floatPtr(58.5),
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, domain.TariffPro, saved.Tariff)
		assert.Equal(t, 150, saved.PortfolioSize)
		assert.Equal(t, 58.5, saved.AcceptanceRate)

		// Campos ausentes no payload ficam como estavam
		assert.Equal(t, "Ana", saved.Name)
		assert.Equal(t, "ana@exemplo.com", saved.Email)
		assert.True(t, saved.Active)
	})

	t.Run("vendedor inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetSellerByID(99).Return(nil, nil)

		err := service.UpdateSeller(&domain.UpdateSellerRequest{ID: 99, Name: stringPtr("X")})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSellerNotFound)

		var sellerErr *SellerError
		require.ErrorAs(t, err, &sellerErr)
		assert.Equal(t, apiErrors.ErrSellerNotFound, sellerErr.Code)
		assert.Equal(t, 99, sellerErr.SellerID)
	})

	t.Run("tarifa inválida na atualização", func(t *testing.T) {
		mockRepo.EXPECT().GetSellerByID(3).Return(&domain.Seller{ID: 3, Name: "Ana"}, nil)

		err := service.UpdateSeller(&domain.UpdateSellerRequest{ID: 3, Tariff: stringPtr("platinum")})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTariff)
	})

	t.Run("sem ID", func(t *testing.T) {
		err := service.UpdateSeller(&domain.UpdateSellerRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestGetSellerByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("vendedor encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetSellerByID(5).Return(&domain.Seller{ID: 5, Name: "Ana"}, nil)

		seller, err := service.GetSellerByID(5)

		require.NoError(t, err)
		assert.Equal(t, "Ana", seller.Name)
	})

	t.Run("vendedor inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetSellerByID(8).Return(nil, nil)

		_, err := service.GetSellerByID(8)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("erro de banco", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mockRepo.EXPECT().GetSellerByID(5).Return(nil, dbErr)

		_, err := service.GetSellerByID(5)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})
}
