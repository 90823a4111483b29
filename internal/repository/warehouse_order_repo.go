package repository

import (
	"strings"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WarehouseOrderRepository struct {
	db *gorm.DB
}

func NewWarehouseOrderRepository(db *gorm.DB) *WarehouseOrderRepository {
	return &WarehouseOrderRepository{db: db}
}

func (r *WarehouseOrderRepository) Upsert(order *models.WarehouseOrder) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"order_number", "customer_name", "total_value", "delivery_date",
			"delivery_status", "metadata", "line_items", "updated_at",
		}),
	}).Create(order).Error
}

func (r *WarehouseOrderRepository) GetByID(id string) (*models.WarehouseOrder, error) {
	var order models.WarehouseOrder
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *WarehouseOrderRepository) GetAll() ([]models.WarehouseOrder, error) {
	var orders []models.WarehouseOrder
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindOverdue returns orders whose delivery date has passed and that are not
// yet delivered or cancelled.
func (r *WarehouseOrderRepository) FindOverdue(now time.Time) ([]models.WarehouseOrder, error) {
	var orders []models.WarehouseOrder
	err := r.db.
		Where("delivery_date IS NOT NULL AND delivery_date < ?", now).
		Where("delivery_status NOT IN ?", []string{"delivered", "cancelled"}).
		Find(&orders).Error
	return orders, err
}

func (r *WarehouseOrderRepository) List(status, cursor, search string, limit int) ([]models.WarehouseOrder, string, bool, error) {
	var orders []models.WarehouseOrder

	query := r.db.Order("id ASC").Limit(limit + 1)
	if status != "" && status != "all" {
		query = query.Where("delivery_status = ?", status)
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
