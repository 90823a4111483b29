package repository

import (
	"strings"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommerceOrderRepository struct {
	db *gorm.DB
}

func NewCommerceOrderRepository(db *gorm.DB) *CommerceOrderRepository {
	return &CommerceOrderRepository{db: db}
}

func (r *CommerceOrderRepository) DB() *gorm.DB {
	return r.db
}

// Upsert inserts or refreshes an order keyed by its external (Shopify) id.
func (r *CommerceOrderRepository) Upsert(order *models.CommerceOrder) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"order_number", "customer_name", "customer_email", "total_value",
			"currency", "financial_status", "fulfillment_status", "order_date",
			"line_items", "updated_at",
		}),
	}).Create(order).Error
}

func (r *CommerceOrderRepository) GetByID(id string) (*models.CommerceOrder, error) {
	var order models.CommerceOrder
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll returns the full collection; the reconciliation engine scores
// in-memory snapshots, so both collections are materialized before scoring.
func (r *CommerceOrderRepository) GetAll() ([]models.CommerceOrder, error) {
	var orders []models.CommerceOrder
	err := r.db.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

// List pages through orders with an id cursor and optional filters.
func (r *CommerceOrderRepository) List(status, cursor, search string, limit int) ([]models.CommerceOrder, string, bool, error) {
	var orders []models.CommerceOrder

	query := r.db.Order("id ASC").Limit(limit + 1)
	if status != "" && status != "all" {
		query = query.Where("fulfillment_status = ?", status)
	}
	if cursor != "" {
		query = query.Where("id > ?", cursor)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(customer_name) LIKE ? OR LOWER(order_number) LIKE ?", like, like)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, "", false, err
	}

	hasMore := false
	nextCursor := ""
	if len(orders) > limit {
		hasMore = true
		nextCursor = orders[limit-1].ID.String()
		orders = orders[:limit]
	}

	return orders, nextCursor, hasMore, nil
}
