package repository

import (
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

func (r *PurchaseOrderRepository) Upsert(po *models.PurchaseOrder) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"number", "supplier_name", "status", "expected_date", "total_value",
			"lines", "updated_at",
		}),
	}).Create(po).Error
}

func (r *PurchaseOrderRepository) List(status string, limit int) ([]models.PurchaseOrder, error) {
	var pos []models.PurchaseOrder
	query := r.db.Order("expected_date ASC").Limit(limit)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&pos).Error
	return pos, err
}
