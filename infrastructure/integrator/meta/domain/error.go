package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind é a classificação fechada dos erros da API do Meta.
// Todo o código fora do cliente decide com base neste enum, nunca
// inspecionando o payload bruto.
type ErrorKind string

const (
	ErrorKindOther           ErrorKind = "OTHER"
	ErrorKindRateLimited     ErrorKind = "RATE_LIMITED"
	ErrorKindTokenExpired    ErrorKind = "TOKEN_EXPIRED"
	ErrorKindPayloadTooLarge ErrorKind = "PAYLOAD_TOO_LARGE"
)

// APIError é o erro tipado produzido pelo cliente na borda da integração
type APIError struct {
	Kind      ErrorKind
	Code      int
	Subcode   int
	Message   string
	FBTraceID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro da API Meta (%s, código %d, subcódigo %d): %s",
		e.Kind, e.Code, e.Subcode, e.Message)
}

// IsRateLimited indica se o erro é de limite de requisições (transitório)
func IsRateLimited(err error) bool {
	return kindOf(err) == ErrorKindRateLimited
}

// IsTokenExpired indica se o erro é de token expirado (requer reautorização)
func IsTokenExpired(err error) bool {
	return kindOf(err) == ErrorKindTokenExpired
}

// IsPayloadTooLarge indica se a requisição pediu dados demais e deve ser
// degradada (menos campos ou intervalo menor)
func IsPayloadTooLarge(err error) bool {
	return kindOf(err) == ErrorKindPayloadTooLarge
}

func kindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// Códigos de rate limit documentados pelo Meta
var rateLimitCodes = map[int]struct{}{
	4:     {},
	17:    {},
	32:    {},
	613:   {},
	80004: {},
}

// Classify converte o payload de erro bruto no erro tipado.
// É o único ponto do sistema que olha para a forma do payload.
func (r *ErrorResponse) Classify() *APIError {
	apiErr := &APIError{
		Kind:      ErrorKindOther,
		Code:      r.Error.Code,
		Subcode:   r.Error.ErrorSubcode,
		Message:   r.Error.Message,
		FBTraceID: r.Error.FBTraceID,
	}

	switch {
	case r.isRateLimited():
		apiErr.Kind = ErrorKindRateLimited
	case r.isTokenExpired():
		apiErr.Kind = ErrorKindTokenExpired
	case r.isPayloadTooLarge():
		apiErr.Kind = ErrorKindPayloadTooLarge
	}

	return apiErr
}

func (r *ErrorResponse) isRateLimited() bool {
	_, ok := rateLimitCodes[r.Error.Code]
	return ok
}

func (r *ErrorResponse) isTokenExpired() bool {
	// O código 190 representa token expirado; subcódigos 460, 463 e 467
	// cobrem sessão invalidada e senha alterada
	return r.Error.Code == 190 ||
		(r.Error.Type == "OAuthException" &&
			(r.Error.ErrorSubcode == 460 || r.Error.ErrorSubcode == 463 || r.Error.ErrorSubcode == 467))
}

func (r *ErrorResponse) isPayloadTooLarge() bool {
	// O código estruturado nem sempre vem; o padrão da mensagem é o
	// sinal de fallback documentado pelo suporte do Meta
	message := strings.ToLower(r.Error.Message)
	return strings.Contains(message, "reduce the amount of data") ||
		strings.Contains(message, "too much data") ||
		(r.Error.Code == 100 && r.Error.ErrorSubcode == 1504018)
}
