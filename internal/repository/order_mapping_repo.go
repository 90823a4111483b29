package repository

import (
	"errors"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderMappingRepository struct {
	db *gorm.DB
}

func NewOrderMappingRepository(db *gorm.DB) *OrderMappingRepository {
	return &OrderMappingRepository{db: db}
}

func (r *OrderMappingRepository) Create(mapping *models.OrderMapping) error {
	return r.db.Create(mapping).Error
}

func (r *OrderMappingRepository) GetByID(id uuid.UUID) (*models.OrderMapping, error) {
	var mapping models.OrderMapping
	if err := r.db.First(&mapping, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

// UpdateFields merges the provided columns into an existing mapping.
func (r *OrderMappingRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.OrderMapping{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Deactivate is a soft delete; mapping rows are never removed.
func (r *OrderMappingRepository) Deactivate(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.OrderMapping{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":      false,
			"deactivated_at": at,
		}).Error
}

func (r *OrderMappingRepository) ListActive() ([]models.OrderMapping, error) {
	var mappings []models.OrderMapping
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&mappings).Error
	return mappings, err
}

// FindActiveByPair returns the active mapping for a source-order pair, or nil
// when none exists.
func (r *OrderMappingRepository) FindActiveByPair(commerceOrderID, warehouseOrderID uuid.UUID) (*models.OrderMapping, error) {
	var mapping models.OrderMapping
	err := r.db.
		Where("commerce_order_id = ? AND warehouse_order_id = ? AND is_active = ?",
			commerceOrderID, warehouseOrderID, true).
		First(&mapping).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// Find filters active mappings by either side of the pair; nil uuids are
// ignored.
func (r *OrderMappingRepository) Find(commerceOrderID, warehouseOrderID *uuid.UUID) (*models.OrderMapping, error) {
	query := r.db.Where("is_active = ?", true)
	if commerceOrderID != nil {
		query = query.Where("commerce_order_id = ?", *commerceOrderID)
	}
	if warehouseOrderID != nil {
		query = query.Where("warehouse_order_id = ?", *warehouseOrderID)
	}

	var mapping models.OrderMapping
	err := query.First(&mapping).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (r *OrderMappingRepository) LogAction(entry *models.MappingAuditLog) error {
	return r.db.Create(entry).Error
}
