package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CommerceOrder is a normalized order ingested from the e-commerce platform (Shopify).
type CommerceOrder struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID        string         `gorm:"uniqueIndex" json:"external_id"`
	OrderNumber       string         `gorm:"index" json:"order_number"`
	CustomerName      string         `gorm:"index" json:"customer_name"`
	CustomerEmail     string         `json:"customer_email"`
	TotalValue        *float64       `gorm:"index" json:"total_value"`
	Currency          string         `json:"currency"`
	FinancialStatus   string         `json:"financial_status"`
	FulfillmentStatus string         `json:"fulfillment_status"`
	OrderDate         time.Time      `json:"order_date"`
	LineItems         datatypes.JSON `json:"line_items"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
