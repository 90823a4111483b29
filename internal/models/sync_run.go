package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceShopify  = "shopify"
	SourceOngoing  = "ongoing"
	SourceRackbeat = "rackbeat"
)

// SyncRun tracks one ingestion run against a single external source.
type SyncRun struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Source         string     `gorm:"index" json:"source"`
	Status         string     `gorm:"index" json:"status"`
	TotalRecords   int        `json:"total_records"`
	ProcessedCount int        `json:"processed_count"`
	FailedCount    int        `json:"failed_count"`
	ErrorMessage   string     `json:"error_message"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}
