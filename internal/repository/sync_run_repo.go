package repository

import (
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyncRunRepository struct {
	db *gorm.DB
}

func NewSyncRunRepository(db *gorm.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

func (r *SyncRunRepository) Create(run *models.SyncRun) error {
	return r.db.Create(run).Error
}

func (r *SyncRunRepository) GetByID(id uuid.UUID) (*models.SyncRun, error) {
	var run models.SyncRun
	if err := r.db.First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *SyncRunRepository) UpdateProgress(id uuid.UUID, processed, failed int) error {
	return r.db.Model(&models.SyncRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed_count": processed,
			"failed_count":    failed,
		}).Error
}

func (r *SyncRunRepository) MarkCompleted(id uuid.UUID, total, processed, failed int) error {
	now := time.Now()
	return r.db.Model(&models.SyncRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_records":   total,
			"processed_count": processed,
			"failed_count":    failed,
			"status":          "completed",
			"completed_at":    now,
		}).Error
}

func (r *SyncRunRepository) MarkFailed(id uuid.UUID, message string) error {
	now := time.Now()
	return r.db.Model(&models.SyncRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        "failed",
			"error_message": message,
			"completed_at":  now,
		}).Error
}
