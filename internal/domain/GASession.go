package domain

import "time"

// GASessionRow é uma linha de sessões/engajamento do Google Analytics,
// por (conta, data, página). Consumida em conjunto com as métricas de
// anúncios pelos painéis; fora do caminho crítico do motor de decisão.
type GASessionRow struct {
	ID              int64     `json:"id"`
	AccountID       string    `json:"account_id"`
	Date            time.Time `json:"date"`
	PagePath        string    `json:"page_path"`
	Sessions        int       `json:"sessions"`
	EngagedSessions int       `json:"engaged_sessions"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
