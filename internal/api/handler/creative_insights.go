package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/usecases/alerting"
	"github.com/vfg2006/creative-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/creative-manager-api/pkg/apiErrors"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// DecisionsRequest carrega os overrides manuais aplicados pelo gestor.
// As chaves do mapa são os external_ids dos anúncios.
type DecisionsRequest struct {
	Overrides map[string]string `json:"overrides"`
}

// CreativeMetrics retorna as métricas agregadas por criativo no período
func CreativeMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.GetCreativeMetrics(accountID, filters)
		if err != nil {
			logrus.Error("Error fetching creative metrics:", err)
			writeInsightError(w, err, "Erro ao consultar métricas por criativo")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreativeDecisions classifica os criativos do período. Aceita GET sem corpo
// ou POST com overrides manuais no corpo.
func CreativeDecisions(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		overrides := make(domain.StatusOverrides)
		if r.Method == http.MethodPost && r.Body != nil {
			var req DecisionsRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}

			for adExternalID, status := range req.Overrides {
				overrides[adExternalID] = domain.DecisionStatus(status)
			}
		}

		decisions, err := service.GetCreativeDecisions(accountID, filters, overrides)
		if err != nil {
			logrus.Error("Error classifying creatives:", err)
			writeInsightError(w, err, "Erro ao classificar criativos")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(decisions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SyncHistory lista as execuções de sincronização mais recentes da conta
func SyncHistory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.GetSyncHistory(accountID, limit)
		if err != nil {
			logrus.Error("Error fetching sync history:", err)
			writeInsightError(w, err, "Erro ao consultar histórico de sincronizações")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(runs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GASessions lista as sessões por página vindas do Google Analytics
func GASessions(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		sessions, err := service.GetGASessions(accountID, filters)
		if err != nil {
			logrus.Error("Error fetching GA sessions:", err)
			writeInsightError(w, err, "Erro ao consultar sessões do Google Analytics")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(sessions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UnresolvedAlerts lista os alertas ainda abertos da conta
func UnresolvedAlerts(service alerting.AlertService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		alerts, err := service.ListUnresolved(accountID)
		if err != nil {
			logrus.Error("Error listing alerts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ResolveAlert marca um alerta como resolvido
func ResolveAlert(service alerting.AlertService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alertID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if alertID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do alerta é obrigatório", nil)
			return
		}

		if err := service.Resolve(alertID); err != nil {
			logrus.Error("Error resolving alert:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao resolver alerta: "+err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}

// filtersFromQuery monta os filtros de período a partir da query string
func filtersFromQuery(r *http.Request) (*domain.InsightFilters, error) {
	filters := &domain.InsightFilters{}

	if startStr := r.URL.Query().Get("start_date"); startStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			return nil, err
		}
		filters.StartDate = start
	}

	if endStr := r.URL.Query().Get("end_date"); endStr != "" {
		end, err := utils.ParseDate(endStr)
		if err != nil {
			return nil, err
		}
		filters.EndDate = end
	}

	return filters, nil
}

func writeInsightError(w http.ResponseWriter, err error, fallback string) {
	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) {
		apiErrors.WriteError(w, insightErr.Code, insightErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, insighting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)

	case errors.Is(err, insighting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Período de datas inválido", nil)

	case errors.Is(err, insighting.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
