package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive  AdAccountStatus = "ACTIVE"
	AdAccountStatusPaused  AdAccountStatus = "PAUSED"
	AdAccountStatusRevoked AdAccountStatus = "REVOKED"
)

// AdAccount representa uma conta de anúncios conectada via OAuth.
// O token de acesso é armazenado criptografado e nunca sai do backend.
// Contas nunca são removidas fisicamente; apenas o status muda.
type AdAccount struct {
	ID              string          `json:"id"`
	UserID          int             `json:"user_id"`
	ExternalID      string          `json:"external_id"`
	Name            string          `json:"name"`
	Status          AdAccountStatus `json:"status"`
	ConversionEvent string          `json:"conversion_event"`
	AccessTokenEnc  string          `json:"-"`
	TokenExpiresAt  *time.Time      `json:"token_expires_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TokenExpired indica se o token da conta já passou da expiração registrada
func (a *AdAccount) TokenExpired(now time.Time) bool {
	return a.TokenExpiresAt != nil && now.After(*a.TokenExpiresAt)
}

type AdAccountResponse struct {
	ID              string          `json:"id"`
	ExternalID      string          `json:"external_id"`
	Name            string          `json:"name"`
	Status          AdAccountStatus `json:"status"`
	ConversionEvent string          `json:"conversion_event"`
	HasToken        bool            `json:"hasToken"`
	TokenExpiresAt  *time.Time      `json:"token_expires_at"`
}

type UpdateAdAccountRequest struct {
	ID              string  `json:"id"`
	Name            *string `json:"name,omitempty"`
	ConversionEvent *string `json:"conversion_event,omitempty"`
	Status          *string `json:"status,omitempty"`
}

type ConnectAccountRequest struct {
	ExternalID      string `json:"external_id"`
	Name            string `json:"name"`
	ConversionEvent string `json:"conversion_event"`
	ShortLivedToken string `json:"short_lived_token"`
}
