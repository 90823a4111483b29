package handler

import (
	"net/http"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SyncHandler struct {
	service *ingest.Service
}

func NewSyncHandler(s *ingest.Service) *SyncHandler {
	return &SyncHandler{service: s}
}

// Start kicks off an ingestion run for one source and returns immediately;
// progress is polled through GetProgress.
func (h *SyncHandler) Start(c *gin.Context) {
	run, err := h.service.StartSync(c.Param("source"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"run_id": run.ID.String(),
		"source": run.Source,
		"status": run.Status,
	})
}

func (h *SyncHandler) GetProgress(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	progress, err := h.service.GetProgress(runID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
