package domain

import "time"

type SyncRunStatus string

const (
	SyncRunStatusRunning   SyncRunStatus = "RUNNING"
	SyncRunStatusCompleted SyncRunStatus = "COMPLETED"
	SyncRunStatusFailed    SyncRunStatus = "FAILED"
)

type SyncRunKind string

const (
	SyncRunKindFull      SyncRunKind = "FULL"
	SyncRunKindAnalytics SyncRunKind = "ANALYTICS"
)

// SyncRun é o registro append-only de uma invocação de sincronização.
// Depois de COMPLETED ou FAILED a linha nunca mais é alterada.
type SyncRun struct {
	ID          string        `json:"id"`
	AccountID   string        `json:"account_id"`
	Kind        SyncRunKind   `json:"kind"`
	Status      SyncRunStatus `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  *time.Time    `json:"finished_at"`
	RecordCount int           `json:"record_count"`
	ErrorText   *string       `json:"error_text"`
}

// StructureCounts resume quantas entidades de estrutura a sincronização gravou
type StructureCounts struct {
	Campaigns int `json:"campaigns"`
	AdSets    int `json:"adsets"`
	Ads       int `json:"ads"`
}

// FullSyncResult é o retorno de uma sincronização completa de conta
type FullSyncResult struct {
	Structure      StructureCounts `json:"structure"`
	MetricRowCount int             `json:"metric_row_count"`
}
