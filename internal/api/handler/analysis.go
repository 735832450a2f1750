package handler

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/infrastructure/repository"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/analyzing"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/recommending"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/reporting"
	"github.com/stockpeak/stock-analytics-api/internal/usecases/sellering"
	"github.com/stockpeak/stock-analytics-api/pkg/apiErrors"
	"github.com/stockpeak/stock-analytics-api/pkg/utils"
)

// Limite do corpo multipart aceito no upload de arquivos de vendas
const maxUploadSizeBytes = 32 << 20 // 32 MB

// AnalysisDependencies agrupa os serviços do pipeline de análise usados pelos
// handlers de upload e consulta de relatórios
type AnalysisDependencies struct {
	Analyzer      analyzing.Analyzer
	Recommender   *recommending.Service
	Reporter      *reporting.Service
	SellerService sellering.SellerService
	ReportRepo    repository.AnalysisReportRepository

	// Clock permite fixar o relógio nos testes; nil usa time.Now
	Clock func() time.Time
}

func (d AnalysisDependencies) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// AnalysisResponse é a resposta do endpoint de upload
type AnalysisResponse struct {
	ExternalID string                 `json:"external_id"`
	SellerID   int                    `json:"seller_id"`
	Period     string                 `json:"period"`
	Result     *domain.AnalysisResult `json:"result"`
	ReportText string                 `json:"report_text"`
}

// UploadSalesFile recebe o CSV de vendas do vendedor, roda o pipeline completo
// (ingestão, qualidade, métricas, recomendações, relatório) e persiste a
// análise do período. Reenviar o mesmo mês substitui a análise anterior.
func UploadSalesFile(deps AnalysisDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadSalesFile")

		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		seller, err := deps.SellerService.GetSellerByID(sellerID)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSizeBytes)
		if err := r.ParseMultipartForm(maxUploadSizeBytes); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou arquivo grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' não encontrado na requisição", nil)
			return
		}
		defer file.Close()

		// O pipeline lê de disco; materializar o upload em um arquivo temporário
		tmpFile, err := os.CreateTemp("", "sales-upload-*.csv")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao preparar arquivo para análise", nil)
			return
		}
		defer os.Remove(tmpFile.Name())

		if _, err := io.Copy(tmpFile, file); err != nil {
			tmpFile.Close()
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar arquivo para análise", nil)
			return
		}
		if err := tmpFile.Close(); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar arquivo para análise", nil)
			return
		}

		now := deps.now()

		result, err := deps.Analyzer.Analyze(tmpFile.Name(), seller.Inputs(), now)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"seller_id": sellerID,
				"filename":  header.Filename,
			}).Warn("Arquivo de vendas rejeitado pelo pipeline")
			handleAnalysisError(w, err)
			return
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("resultado da análise: %s", utils.PrettyJson(result))
		}

		recs, err := deps.Recommender.Evaluate(result)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar recomendações", nil)
			return
		}

		reportText, err := deps.Reporter.Render(result, recs, seller.ReportTopN())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
			return
		}

		externalID, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador da análise", nil)
			return
		}

		entry := &domain.AnalysisReportEntry{
			ExternalID: externalID,
			SellerID:   seller.ID,
			Period:     result.PeriodMonth,
			Result:     result,
			ReportText: reportText,
		}

		if err := deps.ReportRepo.SaveOrUpdate(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar análise", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"seller_id":   seller.ID,
			"external_id": externalID,
			"period":      result.PeriodMonth,
			"rows_used":   result.RowsUsed,
		}).Info("Análise de vendas concluída e persistida")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(AnalysisResponse{
			ExternalID: externalID,
			SellerID:   seller.ID,
			Period:     result.PeriodMonth,
			Result:     result,
			ReportText: reportText,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSellerAnalyses lista as análises persistidas do vendedor, mais recentes
// primeiro. Com ?period=YYYY-MM-01 devolve apenas a análise daquele mês.
func ListSellerAnalyses(deps AnalysisDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		if period := r.URL.Query().Get("period"); period != "" {
			if _, err := utils.ParsePeriodKey(period); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido, use YYYY-MM-01", nil)
				return
			}

			entry, err := deps.ReportRepo.GetBySellerAndPeriod(sellerID, period)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar análise", nil)
				return
			}
			if entry == nil {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Análise não encontrada para o período", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode([]*domain.AnalysisReportEntry{entry}); err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			}
			return
		}

		entries, err := deps.ReportRepo.ListBySeller(sellerID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar análises", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(entries)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetAnalysis retorna uma análise pelo identificador externo
func GetAnalysis(deps AnalysisDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID := httprouter.ParamsFromContext(r.Context()).ByName("external_id")
		if externalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da análise não fornecido", nil)
			return
		}

		entry, err := deps.ReportRepo.GetByExternalID(externalID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar análise", nil)
			return
		}

		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Análise não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(entry)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleAnalysisError traduz erros do pipeline de análise para a resposta HTTP.
// Formato inválido e qualidade baixa pedem ações corretivas diferentes do
// vendedor, por isso os códigos distintos.
func handleAnalysisError(w http.ResponseWriter, err error) {
	var qualityErr *analyzing.DataQualityError
	if errors.As(err, &qualityErr) {
		apiErrors.WriteError(w, apiErrors.ErrLowDataQuality, qualityErr.Error(), map[string]any{
			"broken_pct":    qualityErr.BrokenPct,
			"threshold_pct": qualityErr.ThresholdPct,
			"rows_total":    qualityErr.RowsTotal,
			"broken_rows":   qualityErr.BrokenRows,
		})
		return
	}

	switch {
	case analyzing.IsEmptyInputError(err):
		apiErrors.WriteError(w, apiErrors.ErrEmptyFile, "Arquivo de vendas sem linhas interpretáveis", nil)

	case analyzing.IsFormatError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFileFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar arquivo de vendas", nil)
	}
}
