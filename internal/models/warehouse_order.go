package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WarehouseOrder is a normalized order ingested from the warehouse-management
// system (Ongoing WMS). DeliveryStatus is the normalized form; the raw vendor
// encoding stays in Metadata under "delivery_info".
type WarehouseOrder struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID     string         `gorm:"uniqueIndex" json:"external_id"`
	OrderNumber    string         `gorm:"index" json:"order_number"`
	CustomerName   string         `gorm:"index" json:"customer_name"`
	TotalValue     *float64       `gorm:"index" json:"total_value"`
	DeliveryDate   *time.Time     `json:"delivery_date"`
	DeliveryStatus string         `gorm:"index" json:"delivery_status"`
	Metadata       datatypes.JSON `json:"metadata"`
	LineItems      datatypes.JSON `json:"line_items"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// OrderLine is the shape stored in the LineItems JSON column of both order
// variants.
type OrderLine struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
