package metaclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/crypto"
)

// TokenStore é a visão do repositório de contas necessária para a
// propagação de tokens renovados. O token do Meta é por usuário, não por
// conta: a renovação escreve em todas as contas do mesmo dono.
type TokenStore interface {
	UpdateTokenForUser(userID int, encryptedToken string, expiresAt time.Time) error
}

// TokenManager gerencia o ciclo de vida dos tokens de acesso: criptografia
// em repouso, acompanhamento de expiração e renovação proativa.
type TokenManager struct {
	cfg       *config.Config
	encryptor *crypto.Encryptor
	client    Client
	store     TokenStore
	mu        sync.Mutex
}

// NewTokenManager cria o gerenciador de tokens. A chave de criptografia
// ausente ou inválida é um erro fatal de configuração.
func NewTokenManager(cfg *config.Config, client Client, store TokenStore) (*TokenManager, error) {
	encryptor, err := crypto.NewEncryptor(cfg.CryptoKey)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar criptografia de tokens: %w", err)
	}

	return &TokenManager{
		cfg:       cfg,
		encryptor: encryptor,
		client:    client,
		store:     store,
	}, nil
}

// Encrypt criptografa um token para armazenamento
func (tm *TokenManager) Encrypt(secret string) (string, error) {
	return tm.encryptor.Encrypt(secret)
}

// Decrypt descriptografa um token armazenado
func (tm *TokenManager) Decrypt(ciphertext string) (string, error) {
	return tm.encryptor.Decrypt(ciphertext)
}

// RefreshIfExpiringSoon devolve o token em claro da conta, renovando-o
// antes se a expiração estiver dentro da janela configurada.
//
// Três situações:
//   - expiração longe (ou desconhecida): devolve o token armazenado;
//   - já expirado: devolve o token armazenado sem tentar renovar — o Meta
//     não renova token expirado, e a próxima chamada à API vai produzir o
//     erro de token expirado para o chamador tratar via reautenticação;
//   - dentro da janela: troca por um token novo e propaga para todas as
//     contas do mesmo usuário.
func (tm *TokenManager) RefreshIfExpiringSoon(account *domain.AdAccount) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	plainToken, err := tm.Decrypt(account.AccessTokenEnc)
	if err != nil {
		return "", fmt.Errorf("erro ao descriptografar token da conta %s: %w", account.ID, err)
	}

	now := time.Now()

	if account.TokenExpiresAt == nil {
		return plainToken, nil
	}

	window := time.Duration(tm.cfg.Meta.TokenRefreshWindowDays) * 24 * time.Hour
	untilExpiry := account.TokenExpiresAt.Sub(now)

	if untilExpiry > window {
		return plainToken, nil
	}

	if untilExpiry <= 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"expired_at": account.TokenExpiresAt.Format(time.RFC3339),
		}).Warn("Token já expirado; renovação impossível, é necessário reautorizar")
		return plainToken, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"expires_at":   account.TokenExpiresAt.Format(time.RFC3339),
		"until_expiry": untilExpiry.String(),
	}).Info("Token próximo da expiração. Renovando proativamente")

	tokenResp, err := tm.client.ExchangeLongLivedToken(plainToken)
	if err != nil {
		return "", fmt.Errorf("erro ao renovar token da conta %s: %w", account.ID, err)
	}

	encrypted, err := tm.Encrypt(tokenResp.AccessToken)
	if err != nil {
		return "", fmt.Errorf("erro ao criptografar token renovado: %w", err)
	}

	expiresAt := tokenResp.ExpiresAt(now)

	// O token do Meta é escopado ao usuário: todas as contas do dono
	// compartilham a mesma credencial e recebem a renovação
	if err := tm.store.UpdateTokenForUser(account.UserID, encrypted, expiresAt); err != nil {
		return "", fmt.Errorf("erro ao propagar token renovado: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    account.UserID,
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("Token renovado e propagado para as contas do usuário")

	return tokenResp.AccessToken, nil
}
