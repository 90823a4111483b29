package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MappingTypeExact     = "exact"
	MappingTypeManual    = "manual"
	MappingTypeSuggested = "suggested"
)

// OrderMapping is the accepted link between a commerce order and a warehouse
// order. Rows are never hard-deleted; deactivation flips IsActive so the
// audit history survives. The snapshots denormalize enough of each side to
// render the mapping list without re-joining the order tables.
type OrderMapping struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CommerceOrderID   uuid.UUID      `gorm:"type:uuid;index" json:"commerce_order_id"`
	WarehouseOrderID  uuid.UUID      `gorm:"type:uuid;index" json:"warehouse_order_id"`
	MappingType       string         `gorm:"index" json:"mapping_type"`
	Confidence        int            `json:"confidence"`
	MatchReason       string         `json:"match_reason"`
	Notes             string         `json:"notes"`
	IsActive          bool           `gorm:"index" json:"is_active"`
	CommerceSnapshot  datatypes.JSON `json:"commerce_snapshot"`
	WarehouseSnapshot datatypes.JSON `json:"warehouse_snapshot"`
	DeactivatedAt     *time.Time     `json:"deactivated_at"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// OrderSnapshot is the denormalized summary stored on a mapping for display.
type OrderSnapshot struct {
	OrderNumber  string   `json:"order_number"`
	Status       string   `json:"status"`
	CustomerName string   `json:"customer_name"`
	TotalValue   *float64 `json:"total_value"`
}
