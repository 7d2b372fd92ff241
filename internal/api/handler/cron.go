package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/scheduler"
	"github.com/vfg2006/creative-manager-api/pkg/apiErrors"
	"github.com/vfg2006/creative-manager-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFullSync = "full-sync"
	CronJobTypeAlerts   = "alerts"
	CronJobTypeGA       = "ga"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FullSyncService    *scheduler.FullSyncService
	AlertDetectService *scheduler.AlertDetectService
	GASyncService      *scheduler.GASyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFullSync:
			if services.FullSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização completa não disponível", nil)
				return
			}
			services.FullSyncService.TriggerManualSync()

		case CronJobTypeAlerts:
			if services.AlertDetectService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de detecção de alertas não disponível", nil)
				return
			}
			services.AlertDetectService.TriggerManualDetect()

		case CronJobTypeGA:
			if services.GASyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Google Analytics não disponível", nil)
				return
			}
			services.GASyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.FullSyncService != nil {
				services.FullSyncService.TriggerManualSync()
			}
			if services.AlertDetectService != nil {
				services.AlertDetectService.TriggerManualDetect()
			}
			if services.GASyncService != nil {
				services.GASyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: full-sync, alerts, ga, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"full-sync": services.FullSyncService.GetStatus(),
			"alerts":    services.AlertDetectService.GetStatus(),
			"ga":        services.GASyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
