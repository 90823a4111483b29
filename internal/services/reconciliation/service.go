package reconciliation

import (
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/apperrors"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/matching"
)

// Service feeds the matching engine with in-memory snapshots of both order
// collections. The engine itself stays pure; this layer owns the I/O.
type Service struct {
	commerceRepo  *repository.CommerceOrderRepository
	warehouseRepo *repository.WarehouseOrderRepository
}

func NewService(
	commerceRepo *repository.CommerceOrderRepository,
	warehouseRepo *repository.WarehouseOrderRepository,
) *Service {
	return &Service{
		commerceRepo:  commerceRepo,
		warehouseRepo: warehouseRepo,
	}
}

// SuggestMappings materializes both collections and runs the engine. It has
// no side effects; accepting a candidate goes through the mapping service.
func (s *Service) SuggestMappings() ([]matching.Candidate, error) {
	commerceOrders, err := s.commerceRepo.GetAll()
	if err != nil {
		return nil, apperrors.Unavailable("failed to load commerce orders", err)
	}

	warehouseOrders, err := s.warehouseRepo.GetAll()
	if err != nil {
		return nil, apperrors.Unavailable("failed to load warehouse orders", err)
	}

	return matching.Match(
		commerceSourceOrders(commerceOrders),
		warehouseSourceOrders(warehouseOrders),
	), nil
}

func commerceSourceOrders(orders []models.CommerceOrder) []matching.SourceOrder {
	out := make([]matching.SourceOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, matching.SourceOrder{
			ID:           o.ID.String(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			TotalValue:   o.TotalValue,
		})
	}
	return out
}

func warehouseSourceOrders(orders []models.WarehouseOrder) []matching.SourceOrder {
	out := make([]matching.SourceOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, matching.SourceOrder{
			ID:           o.ID.String(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			TotalValue:   o.TotalValue,
		})
	}
	return out
}
