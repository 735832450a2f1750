package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/sellering"
	"github.com/stockpeak/stock-analytics-api/pkg/apiErrors"
)

// ListSellers lista todos os vendedores cadastrados
func ListSellers(service sellering.SellerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellers, err := service.ListSellers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sellers)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateSeller cadastra um novo vendedor
func CreateSeller(service sellering.SellerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSeller")

		var seller *domain.Seller
		if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		seller, err := service.CreateSeller(seller)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(seller)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSeller retorna o vendedor pelo ID interno
func GetSeller(service sellering.SellerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		seller, err := service.GetSellerByID(sellerID)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(seller)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSeller atualiza o perfil do vendedor
func UpdateSeller(service sellering.SellerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSeller")

		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		var updateReq domain.UpdateSellerRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = sellerID

		if err := service.UpdateSeller(&updateReq); err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// sellerIDFromRequest extrai e valida o parâmetro :id da URL
func sellerIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do vendedor inválido", nil)
		return 0, false
	}

	return id, true
}

// handleSellerError traduz erros do caso de uso de vendedores para a resposta HTTP
func handleSellerError(w http.ResponseWriter, err error) {
	var sellerErr *sellering.SellerError
	if errors.As(err, &sellerErr) {
		apiErrors.WriteError(w, sellerErr.Code, sellerErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, sellering.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, sellering.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, sellering.ErrInvalidTariff):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar vendedor", nil)
	}
}
