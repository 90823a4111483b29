package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseOrder is ingested from the purchasing system (Rackbeat).
type PurchaseOrder struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID   string         `gorm:"uniqueIndex" json:"external_id"`
	Number       string         `gorm:"index" json:"number"`
	SupplierName string         `json:"supplier_name"`
	Status       string         `gorm:"index" json:"status"`
	ExpectedDate *time.Time     `json:"expected_date"`
	TotalValue   *float64       `json:"total_value"`
	Lines        datatypes.JSON `json:"lines"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
