package domain

import "time"

type AlertType string

const (
	// AlertTypeNoConversions sinaliza gasto relevante sem nenhuma conversão no dia
	AlertTypeNoConversions AlertType = "no_conversions"
	// AlertTypeCTRFatigue sinaliza queda do CTR do dia frente à média móvel
	AlertTypeCTRFatigue AlertType = "ctr_fatigue"
)

type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// Alert é uma anomalia detectada nas métricas recém-sincronizadas.
// Deduplicado por (criativo, tipo, dia) via verificação de existência
// antes da inserção.
type Alert struct {
	ID           string        `json:"id"`
	AccountID    string        `json:"account_id"`
	AdExternalID string        `json:"ad_external_id"`
	Type         AlertType     `json:"type"`
	Day          time.Time     `json:"day"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	CreatedAt    time.Time     `json:"created_at"`
	ResolvedAt   *time.Time    `json:"resolved_at"`
}
