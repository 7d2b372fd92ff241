package domain

import "time"

// InsightFilters delimita o período consultado nas leituras de métricas
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
