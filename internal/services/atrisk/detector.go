package atrisk

import (
	"encoding/json"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"
)

// RiskOrder is a warehouse order flagged by the two-predicate filter:
// its delivery date is overdue AND at least one line item is backordered
// (negative stock for the SKU).
type RiskOrder struct {
	Order           models.WarehouseOrder `json:"order"`
	BackorderedSKUs []string              `json:"backordered_skus"`
}

// Detect applies the filter over already-fetched orders and a SKU->stock
// map. Pure; no I/O.
func Detect(orders []models.WarehouseOrder, stockBySKU map[string]int, now time.Time) []RiskOrder {
	flagged := make([]RiskOrder, 0)

	for _, order := range orders {
		if order.DeliveryDate == nil || !order.DeliveryDate.Before(now) {
			continue
		}

		skus := backorderedSKUs(order, stockBySKU)
		if len(skus) == 0 {
			continue
		}

		flagged = append(flagged, RiskOrder{Order: order, BackorderedSKUs: skus})
	}

	return flagged
}

func backorderedSKUs(order models.WarehouseOrder, stockBySKU map[string]int) []string {
	if len(order.LineItems) == 0 {
		return nil
	}

	var lines []models.OrderLine
	if err := json.Unmarshal(order.LineItems, &lines); err != nil {
		// Malformed line items mean no stock evidence, not an error.
		return nil
	}

	var skus []string
	for _, line := range lines {
		if stock, ok := stockBySKU[line.SKU]; ok && stock < 0 {
			skus = append(skus, line.SKU)
		}
	}
	return skus
}

// Service assembles the detector inputs from the store.
type Service struct {
	warehouseRepo *repository.WarehouseOrderRepository
	productRepo   *repository.ProductRepository
}

func NewService(warehouseRepo *repository.WarehouseOrderRepository, productRepo *repository.ProductRepository) *Service {
	return &Service{warehouseRepo: warehouseRepo, productRepo: productRepo}
}

func (s *Service) AtRiskOrders() ([]RiskOrder, error) {
	orders, err := s.warehouseRepo.FindOverdue(time.Now())
	if err != nil {
		return nil, err
	}

	stock, err := s.productRepo.StockBySKU()
	if err != nil {
		return nil, err
	}

	return Detect(orders, stock, time.Now()), nil
}
