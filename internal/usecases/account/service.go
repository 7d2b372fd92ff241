package account

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/apiErrors"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

type AccountService interface {
	ConnectAccount(userID int, request *domain.ConnectAccountRequest) (*domain.AdAccountResponse, error)
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error)
	UpdateStatus(accountID string, status domain.AdAccountStatus) error
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	ListAccountsByUser(userID int) ([]*domain.AdAccountResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metaClient        metaclient.Client
	tokenManager      *metaclient.TokenManager
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	metaClient metaclient.Client,
	tokenManager *metaclient.TokenManager,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		metaClient:        metaClient,
		tokenManager:      tokenManager,
		cfg:               cfg,
	}
}

// ConnectAccount conecta (ou reconecta) uma conta de anúncios: troca o token
// curto do fluxo OAuth por um token de longa duração, criptografa e grava.
// Reconectar uma conta REVOGADA a reativa com o token novo.
func (s *Service) ConnectAccount(userID int, request *domain.ConnectAccountRequest) (*domain.AdAccountResponse, error) {
	if request.ExternalID == "" || request.ShortLivedToken == "" {
		return nil, NewAccountError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "external_id e short_lived_token são obrigatórios")
	}

	tokenResponse, err := s.metaClient.ExchangeLongLivedToken(request.ShortLivedToken)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao trocar token de curta duração")
		return nil, NewAccountError(ErrTokenExchange, apiErrors.ErrExternalService, "Falha ao trocar o token com a API do Meta")
	}

	encryptedToken, err := s.tokenManager.Encrypt(tokenResponse.AccessToken)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao criptografar token de acesso")
		return nil, NewAccountError(ErrTokenEncryption, apiErrors.ErrInternalServer, "Falha ao criptografar o token de acesso")
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	expiresAt := tokenResponse.ExpiresAt(time.Now().UTC())
	account := &domain.AdAccount{
		ID:              accountID,
		UserID:          userID,
		ExternalID:      request.ExternalID,
		Name:            request.Name,
		Status:          domain.AdAccountStatusActive,
		ConversionEvent: request.ConversionEvent,
		AccessTokenEnc:  encryptedToken,
		TokenExpiresAt:  &expiresAt,
	}

	if err := s.accountRepository.CreateAccount(account); err != nil {
		logrus.WithField("error", err).Error("Erro ao salvar conta no banco de dados")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta")
	}

	// O upsert por external_id preserva o id original em reconexões
	saved, err := s.accountRepository.GetAccountByExternalID(request.ExternalID)
	if err != nil || saved == nil {
		logrus.WithField("error", err).Error("Erro ao recarregar conta recém conectada")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao recarregar conta conectada")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  saved.ID,
		"external_id": saved.ExternalID,
		"expires_at":  expiresAt,
	}).Info("Conta de anúncios conectada")

	return toResponse(saved), nil
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	return toResponses(accounts), nil
}

func (s *Service) ListAccountsByUser(userID int) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccountsByUser(userID)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas do usuário")
	}

	return toResponses(accounts), nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao buscar conta no banco de dados")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, request.ID, "Conta não encontrada")
	}

	if request.Status != nil {
		newStatus := domain.AdAccountStatus(*request.Status)
		if err := validateTransition(account.Status, newStatus); err != nil {
			return nil, NewAccountErrorWithID(err, apiErrors.ErrInvalidRequest, request.ID, "Transição de status não permitida")
		}
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		logrus.WithField("error", err).Error("Erro ao atualizar conta no banco de dados")
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	updated, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil || updated == nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao recarregar conta atualizada")
	}

	return toResponse(updated), nil
}

func (s *Service) UpdateStatus(accountID string, status domain.AdAccountStatus) error {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	if err := validateTransition(account.Status, status); err != nil {
		return NewAccountErrorWithID(err, apiErrors.ErrInvalidRequest, accountID, "Transição de status não permitida")
	}

	if err := s.accountRepository.UpdateStatus(accountID, status); err != nil {
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, accountID, "Falha ao atualizar status da conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"from":       account.Status,
		"to":         status,
	}).Info("Status da conta atualizado")

	return nil
}

// validateTransition aplica a regra de ciclo de vida: uma conta REVOGADA só
// volta a ser ACTIVE por reconexão OAuth, nunca por troca direta de status.
func validateTransition(from, to domain.AdAccountStatus) error {
	switch to {
	case domain.AdAccountStatusActive, domain.AdAccountStatusPaused, domain.AdAccountStatusRevoked:
	default:
		return ErrInvalidTransition
	}

	if from == domain.AdAccountStatusRevoked && to != domain.AdAccountStatusRevoked {
		return ErrInvalidTransition
	}

	return nil
}

func toResponse(account *domain.AdAccount) *domain.AdAccountResponse {
	return &domain.AdAccountResponse{
		ID:              account.ID,
		ExternalID:      account.ExternalID,
		Name:            account.Name,
		Status:          account.Status,
		ConversionEvent: account.ConversionEvent,
		HasToken:        account.AccessTokenEnc != "",
		TokenExpiresAt:  account.TokenExpiresAt,
	}
}

func toResponses(accounts []*domain.AdAccount) []*domain.AdAccountResponse {
	responses := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toResponse(account))
	}

	return responses
}
