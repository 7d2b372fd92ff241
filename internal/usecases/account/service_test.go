package account

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient"
	clientmocks "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type accountFixture struct {
	service      AccountService
	accountRepo  *mocks.MockAccountRepository
	metaClient   *clientmocks.MockClient
	tokenManager *metaclient.TokenManager
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	metaClient := clientmocks.NewMockClient(ctrl)

	cfg := &config.Config{CryptoKey: "0123456789abcdef0123456789abcdef"}

	tokenManager, err := metaclient.NewTokenManager(cfg, metaClient, accountRepo)
	require.NoError(t, err)

	return &accountFixture{
		service:      NewService(accountRepo, metaClient, tokenManager, cfg),
		accountRepo:  accountRepo,
		metaClient:   metaClient,
		tokenManager: tokenManager,
	}
}

func TestService_ConnectAccount(t *testing.T) {
	f := newAccountFixture(t)

	request := &domain.ConnectAccountRequest{
		ExternalID:      "ACC001",
		Name:            "Conta Principal",
		ConversionEvent: "purchase",
		ShortLivedToken: "token-curto",
	}

	f.metaClient.EXPECT().
		ExchangeLongLivedToken("token-curto").
		Return(&metaclient.TokenResponse{
			AccessToken: "token-longo",
			TokenType:   "bearer",
			ExpiresIn:   5184000,
		}, nil)

	var savedAccount *domain.AdAccount
	f.accountRepo.EXPECT().
		CreateAccount(gomock.Any()).
		DoAndReturn(func(account *domain.AdAccount) error {
			savedAccount = account
			return nil
		})

	f.accountRepo.EXPECT().
		GetAccountByExternalID("ACC001").
		DoAndReturn(func(string) (*domain.AdAccount, error) {
			return savedAccount, nil
		})

	response, err := f.service.ConnectAccount(42, request)
	require.NoError(t, err)

	assert.Equal(t, "ACC001", response.ExternalID)
	assert.Equal(t, domain.AdAccountStatusActive, response.Status)
	assert.True(t, response.HasToken)
	require.NotNil(t, response.TokenExpiresAt)

	// O token gravado nunca é o texto claro
	require.NotNil(t, savedAccount)
	assert.Equal(t, 42, savedAccount.UserID)
	assert.NotEqual(t, "token-longo", savedAccount.AccessTokenEnc)

	decrypted, err := f.tokenManager.Decrypt(savedAccount.AccessTokenEnc)
	require.NoError(t, err)
	assert.Equal(t, "token-longo", decrypted)
}

func TestService_ConnectAccount_MissingData(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.ConnectAccountRequest
	}{
		{
			name:    "sem external_id",
			request: &domain.ConnectAccountRequest{ShortLivedToken: "token-curto"},
		},
		{
			name:    "sem token",
			request: &domain.ConnectAccountRequest{ExternalID: "ACC001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)

			_, err := f.service.ConnectAccount(1, tt.request)
			require.Error(t, err)

			var accountErr *AccountError
			require.ErrorAs(t, err, &accountErr)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, accountErr.Code)
			assert.ErrorIs(t, err, ErrMissingRequiredData)
		})
	}
}

func TestService_ConnectAccount_ExchangeFails(t *testing.T) {
	f := newAccountFixture(t)

	f.metaClient.EXPECT().
		ExchangeLongLivedToken("token-invalido").
		Return(nil, errors.New("token inválido"))

	_, err := f.service.ConnectAccount(1, &domain.ConnectAccountRequest{
		ExternalID:      "ACC001",
		ShortLivedToken: "token-invalido",
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrTokenExchange)

	var accountErr *AccountError
	require.ErrorAs(t, err, &accountErr)
	assert.Equal(t, apiErrors.ErrExternalService, accountErr.Code)
}

func TestService_UpdateAccount_StatusTransitions(t *testing.T) {
	statusOf := func(s string) *string { return &s }

	tests := []struct {
		name      string
		current   domain.AdAccountStatus
		newStatus *string
		wantErr   error
	}{
		{
			name:      "ativa para pausada",
			current:   domain.AdAccountStatusActive,
			newStatus: statusOf("PAUSED"),
		},
		{
			name:      "pausada para ativa",
			current:   domain.AdAccountStatusPaused,
			newStatus: statusOf("ACTIVE"),
		},
		{
			name:      "revogada não reativa por troca de status",
			current:   domain.AdAccountStatusRevoked,
			newStatus: statusOf("ACTIVE"),
			wantErr:   ErrInvalidTransition,
		},
		{
			name:      "status desconhecido",
			current:   domain.AdAccountStatusActive,
			newStatus: statusOf("ARCHIVED"),
			wantErr:   ErrInvalidTransition,
		},
		{
			name:    "atualização sem status mantém o atual",
			current: domain.AdAccountStatusRevoked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)

			account := &domain.AdAccount{
				ID:         "acc-1",
				ExternalID: "ACC001",
				Status:     tt.current,
			}

			f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(account, nil)

			request := &domain.UpdateAdAccountRequest{ID: "acc-1", Status: tt.newStatus}

			if tt.wantErr == nil {
				f.accountRepo.EXPECT().UpdateAccount(request).Return(nil)
				f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(account, nil)
			}

			_, err := f.service.UpdateAccount(request)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_UpdateAccount_NotFound(t *testing.T) {
	f := newAccountFixture(t)

	f.accountRepo.EXPECT().GetAccountByID("acc-inexistente").Return(nil, nil)

	_, err := f.service.UpdateAccount(&domain.UpdateAdAccountRequest{ID: "acc-inexistente"})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrAccountNotFound)

	var accountErr *AccountError
	require.ErrorAs(t, err, &accountErr)
	assert.Equal(t, "acc-inexistente", accountErr.AccountID)
}

func TestService_UpdateAccount_IDRequired(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.service.UpdateAccount(&domain.UpdateAdAccountRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountIDRequired)
}

func TestService_UpdateStatus_RevokesActiveAccount(t *testing.T) {
	f := newAccountFixture(t)

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(&domain.AdAccount{
		ID:     "acc-1",
		Status: domain.AdAccountStatusActive,
	}, nil)
	f.accountRepo.EXPECT().UpdateStatus("acc-1", domain.AdAccountStatusRevoked).Return(nil)

	err := f.service.UpdateStatus("acc-1", domain.AdAccountStatusRevoked)
	require.NoError(t, err)
}

func TestService_ListAdAccounts(t *testing.T) {
	f := newAccountFixture(t)

	expiresAt := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	statusFilter := []domain.AdAccountStatus{domain.AdAccountStatusActive}

	f.accountRepo.EXPECT().ListAccounts(statusFilter).Return([]*domain.AdAccount{
		{
			ID:             "acc-1",
			ExternalID:     "ACC001",
			Name:           "Conta Principal",
			Status:         domain.AdAccountStatusActive,
			AccessTokenEnc: "token-cifrado",
			TokenExpiresAt: &expiresAt,
		},
		{
			ID:         "acc-2",
			ExternalID: "ACC002",
			Status:     domain.AdAccountStatusActive,
		},
	}, nil)

	responses, err := f.service.ListAdAccounts(statusFilter)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.True(t, responses[0].HasToken)
	assert.Equal(t, &expiresAt, responses[0].TokenExpiresAt)
	assert.False(t, responses[1].HasToken)
}

func TestService_ListAccountsByUser(t *testing.T) {
	f := newAccountFixture(t)

	f.accountRepo.EXPECT().ListAccountsByUser(42).Return([]*domain.AdAccount{
		{ID: "acc-1", UserID: 42, Status: domain.AdAccountStatusActive},
	}, nil)

	responses, err := f.service.ListAccountsByUser(42)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "acc-1", responses[0].ID)
}
