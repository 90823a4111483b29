package mapping

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/apperrors"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service turns accepted mapping candidates into durable OrderMapping rows
// and owns their later lifecycle. At most one active mapping exists per
// (commerce, warehouse) pair: creating over an existing pair deactivates the
// old row first, so re-evaluation history survives as inactive rows.
type Service struct {
	mappingRepo   *repository.OrderMappingRepository
	commerceRepo  *repository.CommerceOrderRepository
	warehouseRepo *repository.WarehouseOrderRepository
}

func NewService(
	mappingRepo *repository.OrderMappingRepository,
	commerceRepo *repository.CommerceOrderRepository,
	warehouseRepo *repository.WarehouseOrderRepository,
) *Service {
	return &Service{
		mappingRepo:   mappingRepo,
		commerceRepo:  commerceRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateInput carries everything needed to promote a candidate (or record a
// manual link) into a persisted mapping.
type CreateInput struct {
	CommerceOrderID  uuid.UUID
	WarehouseOrderID uuid.UUID
	MappingType      string
	Confidence       int
	MatchReason      string
	Notes            string
	PerformedBy      string
}

func (s *Service) CreateMapping(in CreateInput) (*models.OrderMapping, error) {
	switch in.MappingType {
	case models.MappingTypeExact, models.MappingTypeManual, models.MappingTypeSuggested:
	default:
		return nil, apperrors.Validation("mapping type must be exact, manual or suggested")
	}
	if in.Confidence < 0 || in.Confidence > 100 {
		return nil, apperrors.Validation("confidence must be between 0 and 100")
	}

	commerceOrder, err := s.commerceRepo.GetByID(in.CommerceOrderID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("commerce order not found")
		}
		return nil, apperrors.Unavailable("failed to load commerce order", err)
	}

	warehouseOrder, err := s.warehouseRepo.GetByID(in.WarehouseOrderID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("warehouse order not found")
		}
		return nil, apperrors.Unavailable("failed to load warehouse order", err)
	}

	existing, err := s.mappingRepo.FindActiveByPair(in.CommerceOrderID, in.WarehouseOrderID)
	if err != nil {
		return nil, apperrors.Unavailable("failed to check existing mapping", err)
	}
	if existing != nil {
		if err := s.mappingRepo.Deactivate(existing.ID, time.Now()); err != nil {
			return nil, apperrors.Unavailable("failed to deactivate previous mapping", err)
		}
		s.logAction(existing.ID, "deactivate", in.PerformedBy, "superseded by new mapping for same pair")
	}

	commerceSnap, _ := json.Marshal(models.OrderSnapshot{
		OrderNumber:  commerceOrder.OrderNumber,
		Status:       commerceOrder.FulfillmentStatus,
		CustomerName: commerceOrder.CustomerName,
		TotalValue:   commerceOrder.TotalValue,
	})
	warehouseSnap, _ := json.Marshal(models.OrderSnapshot{
		OrderNumber:  warehouseOrder.OrderNumber,
		Status:       warehouseOrder.DeliveryStatus,
		CustomerName: warehouseOrder.CustomerName,
		TotalValue:   warehouseOrder.TotalValue,
	})

	mapping := &models.OrderMapping{
		ID:                uuid.New(),
		CommerceOrderID:   in.CommerceOrderID,
		WarehouseOrderID:  in.WarehouseOrderID,
		MappingType:       in.MappingType,
		Confidence:        in.Confidence,
		MatchReason:       in.MatchReason,
		Notes:             in.Notes,
		IsActive:          true,
		CommerceSnapshot:  commerceSnap,
		WarehouseSnapshot: warehouseSnap,
		CreatedAt:         time.Now(),
	}

	if err := s.mappingRepo.Create(mapping); err != nil {
		return nil, apperrors.Unavailable("failed to create mapping", err)
	}
	s.logAction(mapping.ID, "create", in.PerformedBy, in.MatchReason)

	return mapping, nil
}

// UpdateInput lists the mutable fields; nil means "leave unchanged". The
// snapshots are not revalidated against the order ids here - that stays the
// caller's responsibility.
type UpdateInput struct {
	MappingType *string
	Confidence  *int
	Notes       *string
	PerformedBy string
}

func (s *Service) UpdateMapping(id uuid.UUID, in UpdateInput) (*models.OrderMapping, error) {
	fields := map[string]interface{}{}
	if in.MappingType != nil {
		switch *in.MappingType {
		case models.MappingTypeExact, models.MappingTypeManual, models.MappingTypeSuggested:
		default:
			return nil, apperrors.Validation("mapping type must be exact, manual or suggested")
		}
		fields["mapping_type"] = *in.MappingType
	}
	if in.Confidence != nil {
		if *in.Confidence < 0 || *in.Confidence > 100 {
			return nil, apperrors.Validation("confidence must be between 0 and 100")
		}
		fields["confidence"] = *in.Confidence
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	if _, err := s.getMapping(id); err != nil {
		return nil, err
	}

	if err := s.mappingRepo.UpdateFields(id, fields); err != nil {
		return nil, apperrors.Unavailable("failed to update mapping", err)
	}
	s.logAction(id, "update", in.PerformedBy, "")

	return s.getMapping(id)
}

func (s *Service) DeactivateMapping(id uuid.UUID, performedBy string) error {
	if _, err := s.getMapping(id); err != nil {
		return err
	}

	if err := s.mappingRepo.Deactivate(id, time.Now()); err != nil {
		return apperrors.Unavailable("failed to deactivate mapping", err)
	}
	s.logAction(id, "deactivate", performedBy, "")
	return nil
}

func (s *Service) ListActiveMappings() ([]models.OrderMapping, error) {
	mappings, err := s.mappingRepo.ListActive()
	if err != nil {
		return nil, apperrors.Unavailable("failed to list mappings", err)
	}
	return mappings, nil
}

func (s *Service) FindMapping(commerceOrderID, warehouseOrderID *uuid.UUID) (*models.OrderMapping, error) {
	if commerceOrderID == nil && warehouseOrderID == nil {
		return nil, apperrors.Validation("at least one order id is required")
	}
	mapping, err := s.mappingRepo.Find(commerceOrderID, warehouseOrderID)
	if err != nil {
		return nil, apperrors.Unavailable("failed to find mapping", err)
	}
	return mapping, nil
}

func (s *Service) getMapping(id uuid.UUID) (*models.OrderMapping, error) {
	mapping, err := s.mappingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("mapping not found")
		}
		return nil, apperrors.Unavailable("failed to load mapping", err)
	}
	return mapping, nil
}

// logAction records the audit trail; a failed audit write never fails the
// primary operation.
func (s *Service) logAction(mappingID uuid.UUID, action, performedBy, reason string) {
	_ = s.mappingRepo.LogAction(&models.MappingAuditLog{
		ID:          uuid.New(),
		MappingID:   mappingID,
		Action:      action,
		PerformedBy: performedBy,
		Reason:      reason,
		CreatedAt:   time.Now(),
	})
}
