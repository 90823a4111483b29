package repository

import (
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Upsert(product *models.Product) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "stock_level", "source", "last_synced_at", "updated_at",
		}),
	}).Create(product).Error
}

func (r *ProductRepository) List(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("sku ASC").Limit(limit).Find(&products).Error
	return products, err
}

// StockBySKU loads the stock level of every known SKU. The at-risk detector
// joins against this in memory.
func (r *ProductRepository) StockBySKU() (map[string]int, error) {
	var products []models.Product
	if err := r.db.Select("sku", "stock_level").Find(&products).Error; err != nil {
		return nil, err
	}

	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.SKU] = p.StockLevel
	}
	return stock, nil
}
