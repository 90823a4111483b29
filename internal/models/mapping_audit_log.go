package models

import (
	"time"

	"github.com/google/uuid"
)

// MappingAuditLog records every create/update/deactivate on an OrderMapping.
type MappingAuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MappingID   uuid.UUID `gorm:"index"`
	Action      string
	PerformedBy string
	Reason      string
	CreatedAt   time.Time
}
