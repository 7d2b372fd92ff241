package syncing

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// Tamanho de chunk usado no fallback quando a API rejeita o volume do
// intervalo grosso
const fallbackChunkDays = 1

// SyncService orquestra a sincronização completa de uma conta: renovação de
// token, espelhamento da estrutura e ingestão das métricas diárias. Cada
// invocação fica registrada no log de execuções.
type SyncService interface {
	RunFullSync(account *domain.AdAccount) (*domain.FullSyncResult, error)
	SyncHistory(accountID string, limit int) ([]*domain.SyncRun, error)
}

type Service struct {
	metaClient          metaclient.Client
	tokenManager        *metaclient.TokenManager
	accountRepository   repository.AccountRepository
	structureRepository repository.StructureRepository
	metricRepository    repository.DailyMetricRepository
	syncRunRepository   repository.SyncRunRepository
	cfg                 *config.Config
}

func NewService(
	metaClient metaclient.Client,
	tokenManager *metaclient.TokenManager,
	accountRepository repository.AccountRepository,
	structureRepository repository.StructureRepository,
	metricRepository repository.DailyMetricRepository,
	syncRunRepository repository.SyncRunRepository,
	cfg *config.Config,
) SyncService {
	return &Service{
		metaClient:          metaClient,
		tokenManager:        tokenManager,
		accountRepository:   accountRepository,
		structureRepository: structureRepository,
		metricRepository:    metricRepository,
		syncRunRepository:   syncRunRepository,
		cfg:                 cfg,
	}
}

// RunFullSync executa a sincronização completa da conta. Os upserts são
// idempotentes: rodar duas vezes sobre a mesma janela produz o mesmo estado.
// Qualquer falha finaliza a execução como FAILED com o erro registrado e o
// erro é devolvido ao chamador.
func (s *Service) RunFullSync(account *domain.AdAccount) (*domain.FullSyncResult, error) {
	if account.Status != domain.AdAccountStatusActive || account.AccessTokenEnc == "" {
		return nil, ErrAccountNotSyncable
	}

	running, err := s.syncRunRepository.HasRunning(account.ID, domain.SyncRunKindFull)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar sincronizações em andamento: %w", err)
	}
	if running {
		return nil, ErrSyncInProgress
	}

	run, err := s.syncRunRepository.Create(account.ID, domain.SyncRunKindFull)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar execução de sincronização: %w", err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"sync_run_id": run.ID,
	})
	logger.Info("Iniciando sincronização completa da conta")

	result, err := s.runSync(account, logger)
	if err != nil {
		// O progresso parcial é aceitável: linhas já gravadas permanecem
		// válidas e a contagem parcial fica visível na execução falha
		s.finalize(run.ID, domain.SyncRunStatusFailed, recordCount(result), err, logger)

		if metadomain.IsTokenExpired(err) {
			logger.Warn("Token expirado durante a sincronização; conta marcada como revogada")
			if statusErr := s.accountRepository.UpdateStatus(account.ID, domain.AdAccountStatusRevoked); statusErr != nil {
				logger.WithField("error", statusErr).Error("Erro ao revogar conta com token expirado")
			}
		}

		return nil, err
	}

	s.finalize(run.ID, domain.SyncRunStatusCompleted, recordCount(result), nil, logger)

	logger.WithFields(logrus.Fields{
		"campaigns":   result.Structure.Campaigns,
		"adsets":      result.Structure.AdSets,
		"ads":         result.Structure.Ads,
		"metric_rows": result.MetricRowCount,
	}).Info("Sincronização completa finalizada")

	return result, nil
}

func (s *Service) SyncHistory(accountID string, limit int) ([]*domain.SyncRun, error) {
	return s.syncRunRepository.ListByAccount(accountID, limit)
}

// runSync sempre devolve o resultado com o que já foi gravado, mesmo na
// falha, para a contagem parcial chegar ao registro da execução
func (s *Service) runSync(account *domain.AdAccount, logger *logrus.Entry) (*domain.FullSyncResult, error) {
	result := &domain.FullSyncResult{}

	accessToken, err := s.tokenManager.RefreshIfExpiringSoon(account)
	if err != nil {
		return result, fmt.Errorf("erro ao preparar token de acesso: %w", err)
	}

	counts, err := s.syncStructure(account, accessToken, logger)
	if counts != nil {
		result.Structure = *counts
	}
	if err != nil {
		return result, err
	}

	metricRows, err := s.syncMetrics(account, accessToken, logger)
	result.MetricRowCount = metricRows
	if err != nil {
		return result, err
	}

	return result, nil
}

func recordCount(result *domain.FullSyncResult) int {
	if result == nil {
		return 0
	}

	return result.Structure.Campaigns + result.Structure.AdSets + result.Structure.Ads + result.MetricRowCount
}

// syncStructure espelha campanhas, conjuntos e anúncios da conta
func (s *Service) syncStructure(account *domain.AdAccount, accessToken string, logger *logrus.Entry) (*domain.StructureCounts, error) {
	counts := &domain.StructureCounts{}

	metaCampaigns, err := s.metaClient.GetCampaigns(accessToken, account.ExternalID)
	if err != nil {
		return counts, fmt.Errorf("erro ao buscar campanhas: %w", err)
	}

	campaigns := make([]*domain.Campaign, 0, len(metaCampaigns))
	for _, c := range metaCampaigns {
		campaigns = append(campaigns, &domain.Campaign{
			AccountID:  account.ID,
			ExternalID: c.ID,
			Name:       c.Name,
			Status:     c.Status,
			Objective:  c.Objective,
			Type:       domain.CampaignTypeFromObjective(c.Objective),
		})
	}

	counts.Campaigns, err = s.structureRepository.UpsertCampaigns(campaigns)
	if err != nil {
		return counts, fmt.Errorf("erro ao salvar campanhas: %w", err)
	}

	metaAdSets, err := s.metaClient.GetAdSets(accessToken, account.ExternalID)
	if err != nil {
		return counts, fmt.Errorf("erro ao buscar conjuntos de anúncios: %w", err)
	}

	adSets := make([]*domain.AdSet, 0, len(metaAdSets))
	for _, as := range metaAdSets {
		adSets = append(adSets, &domain.AdSet{
			AccountID:          account.ID,
			ExternalID:         as.ID,
			CampaignExternalID: as.CampaignID,
			Name:               as.Name,
			Status:             as.Status,
		})
	}

	counts.AdSets, err = s.structureRepository.UpsertAdSets(adSets)
	if err != nil {
		return counts, fmt.Errorf("erro ao salvar conjuntos de anúncios: %w", err)
	}

	metaAds, degraded, err := s.fetchAdsWithDegradation(account, accessToken, logger)
	if err != nil {
		return counts, fmt.Errorf("erro ao buscar anúncios: %w", err)
	}

	ads := make([]*domain.Ad, 0, len(metaAds))
	for _, a := range metaAds {
		ad := &domain.Ad{
			AccountID:       account.ID,
			ExternalID:      a.ID,
			AdSetExternalID: a.AdSetID,
			Name:            a.Name,
			Status:          a.Status,
		}
		if a.Creative != nil {
			ad.ThumbnailURL = a.Creative.ThumbnailURL
			ad.CreativeBody = a.Creative.Body
		}
		ads = append(ads, ad)
	}

	counts.Ads, err = s.structureRepository.UpsertAds(ads)
	if err != nil {
		return counts, fmt.Errorf("erro ao salvar anúncios: %w", err)
	}

	// Segunda passada: anúncios listados sem criativo por causa da degradação
	// de campos têm o thumbnail buscado individualmente
	if degraded {
		s.backfillCreatives(account, accessToken, metaAds, logger)
	}

	return counts, nil
}

// fetchAdsWithDegradation tenta o conjunto completo de campos e degrada
// progressivamente quando a API rejeita o volume da resposta
func (s *Service) fetchAdsWithDegradation(account *domain.AdAccount, accessToken string, logger *logrus.Entry) ([]metadomain.Ad, bool, error) {
	fieldSets := [][]string{
		metaclient.AdFieldsFull,
		metaclient.AdFieldsReduced,
		metaclient.AdFieldsMinimal,
	}

	var lastErr error
	for attempt, fields := range fieldSets {
		ads, err := s.metaClient.GetAds(accessToken, account.ExternalID, fields)
		if err == nil {
			return ads, attempt > 0, nil
		}

		if !metadomain.IsPayloadTooLarge(err) {
			return nil, false, err
		}

		logger.WithField("fields", strings.Join(fields, ",")).
			Warn("Volume de anúncios rejeitado pela API; degradando conjunto de campos")
		lastErr = err
	}

	return nil, false, lastErr
}

func (s *Service) backfillCreatives(account *domain.AdAccount, accessToken string, ads []metadomain.Ad, logger *logrus.Entry) {
	for _, ad := range ads {
		if ad.Creative != nil && ad.Creative.ThumbnailURL != "" {
			continue
		}

		creative, err := s.metaClient.GetAdCreative(accessToken, ad.ID)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"ad_external_id": ad.ID,
				"error":          err,
			}).Warn("Erro ao buscar criativo na segunda passada; anúncio segue sem thumbnail")
			continue
		}

		if creative == nil {
			continue
		}

		if err := s.structureRepository.UpdateAdCreative(account.ID, ad.ID, creative.ThumbnailURL, creative.Body); err != nil {
			logger.WithFields(logrus.Fields{
				"ad_external_id": ad.ID,
				"error":          err,
			}).Error("Erro ao gravar criativo da segunda passada")
		}

		s.throttle()
	}
}

// syncMetrics busca os insights diários da janela de retrovisão em chunks e
// grava as linhas por (conta, anúncio, dia)
func (s *Service) syncMetrics(account *domain.AdAccount, accessToken string, logger *logrus.Entry) (int, error) {
	until := time.Now().UTC().AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -(s.cfg.FullSync.LookbackDays - 1))

	chunks, err := utils.SplitDateRange(since, until, s.cfg.FullSync.ChunkDays)
	if err != nil {
		return 0, fmt.Errorf("erro ao dividir a janela de datas: %w", err)
	}

	total := 0
	for _, chunk := range chunks {
		rows, err := s.fetchChunkWithFallback(account, accessToken, chunk, logger)
		if err != nil {
			return total, err
		}

		metrics := s.toDailyMetrics(account, rows)

		written, err := s.metricRepository.UpsertBatch(metrics)
		if err != nil {
			return total, fmt.Errorf("erro ao salvar métricas diárias: %w", err)
		}

		total += written
		s.throttle()
	}

	return total, nil
}

// fetchChunkWithFallback busca o chunk inteiro e, se a API rejeitar o
// volume, refaz a busca dia a dia
func (s *Service) fetchChunkWithFallback(account *domain.AdAccount, accessToken string, chunk utils.DateRange, logger *logrus.Entry) ([]metadomain.InsightRow, error) {
	rows, err := s.metaClient.GetDailyInsights(accessToken, account.ExternalID, chunk.Since, chunk.Until)
	if err == nil {
		return rows, nil
	}

	if !metadomain.IsPayloadTooLarge(err) || chunk.Days() <= fallbackChunkDays {
		return nil, fmt.Errorf("erro ao buscar insights de %s a %s: %w",
			chunk.Since.Format(time.DateOnly), chunk.Until.Format(time.DateOnly), err)
	}

	logger.WithFields(logrus.Fields{
		"since": chunk.Since.Format(time.DateOnly),
		"until": chunk.Until.Format(time.DateOnly),
	}).Warn("Volume de insights rejeitado pela API; refazendo a busca dia a dia")

	days, err := utils.SplitDateRange(chunk.Since, chunk.Until, fallbackChunkDays)
	if err != nil {
		return nil, err
	}

	all := make([]metadomain.InsightRow, 0)
	for _, day := range days {
		dayRows, err := s.metaClient.GetDailyInsights(accessToken, account.ExternalID, day.Since, day.Until)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar insights do dia %s: %w",
				day.Since.Format(time.DateOnly), err)
		}

		all = append(all, dayRows...)
		s.throttle()
	}

	return all, nil
}

func (s *Service) toDailyMetrics(account *domain.AdAccount, rows []metadomain.InsightRow) []*domain.AdDailyMetric {
	metrics := make([]*domain.AdDailyMetric, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      row.AdID,
				"date_start": row.DateStart,
			}).Warn("Linha de insight com data inválida descartada")
			continue
		}

		metrics = append(metrics, &domain.AdDailyMetric{
			AccountID:       account.ID,
			AdExternalID:    row.AdID,
			Date:            date,
			Impressions:     row.ImpressionsInt(),
			Clicks:          row.ClicksInt(),
			Spend:           row.SpendFloat(),
			Conversions:     extractConversions(row.Actions, account.ConversionEvent),
			ConversionValue: extractConversionValue(row.ActionValues, account.ConversionEvent),
			Frequency:       deriveFrequency(&row),
			Reach:           row.ReachInt(),
		})
	}

	return metrics
}

// extractConversions soma as ações que correspondem ao evento de conversão
// da conta: casamento exato primeiro e, sem nenhum, fallback pelo nome base
// do evento, cobrindo a qualificação nos dois sentidos — evento reportado
// qualificado (offsite_conversion.fb_pixel_purchase para o sinal purchase)
// ou sinal configurado qualificado (purchase reportado para o sinal
// offsite_conversion.fb_pixel_purchase).
func extractConversions(actions []metadomain.Action, conversionEvent string) int {
	if conversionEvent == "" {
		return 0
	}

	total := 0
	for _, action := range actions {
		if action.ActionType == conversionEvent {
			total += action.Count()
		}
	}
	if total > 0 {
		return total
	}

	for _, action := range actions {
		if conversionEventMatches(action.ActionType, conversionEvent) {
			total += action.Count()
		}
	}

	return total
}

func extractConversionValue(actionValues []metadomain.Action, conversionEvent string) float64 {
	if conversionEvent == "" {
		return 0
	}

	total := 0.0
	for _, action := range actionValues {
		if action.ActionType == conversionEvent {
			total += action.Amount()
		}
	}
	if total > 0 {
		return total
	}

	for _, action := range actionValues {
		if conversionEventMatches(action.ActionType, conversionEvent) {
			total += action.Amount()
		}
	}

	return total
}

// conversionEventMatches é o fallback de correspondência dos nomes de
// eventos heterogêneos do Meta: o evento reportado termina com o sinal
// configurado, ou o segmento final do sinal configurado aparece dentro do
// nome do evento reportado.
func conversionEventMatches(actionType, conversionEvent string) bool {
	if strings.HasSuffix(actionType, conversionEvent) {
		return true
	}

	return strings.Contains(actionType, trailingSegment(conversionEvent))
}

// trailingSegment extrai o nome base de um sinal qualificado:
// offsite_conversion.fb_pixel_purchase -> purchase
func trailingSegment(signal string) string {
	if idx := strings.LastIndexAny(signal, "._"); idx >= 0 && idx < len(signal)-1 {
		return signal[idx+1:]
	}

	return signal
}

// deriveFrequency usa a frequência reportada e, ausente, deriva de
// impressões sobre alcance
func deriveFrequency(row *metadomain.InsightRow) float64 {
	if frequency := row.FrequencyFloat(); frequency > 0 {
		return frequency
	}

	reach := row.ReachInt()
	if reach == 0 {
		return 0
	}

	return float64(row.ImpressionsInt()) / float64(reach)
}

func (s *Service) finalize(runID string, status domain.SyncRunStatus, recordCount int, runErr error, logger *logrus.Entry) {
	var errorText *string
	if runErr != nil {
		text := runErr.Error()
		errorText = &text
	}

	if err := s.syncRunRepository.Finalize(runID, status, recordCount, errorText); err != nil {
		logger.WithField("error", err).Error("Erro ao finalizar registro da sincronização")
	}
}

func (s *Service) throttle() {
	if s.cfg.FullSync.RequestDelaySeconds > 0 {
		time.Sleep(time.Duration(s.cfg.FullSync.RequestDelaySeconds) * time.Second)
	}
}
