package models

import (
	"time"

	"github.com/google/uuid"
)

// Product carries the stock level per SKU. StockLevel can go negative when
// the warehouse has oversold (backordered) a SKU.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SKU          string    `gorm:"uniqueIndex" json:"sku"`
	Name         string    `json:"name"`
	StockLevel   int       `gorm:"index" json:"stock_level"`
	Source       string    `json:"source"`
	LastSyncedAt time.Time `json:"last_synced_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
