package handler

import (
	"net/http"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
)

type ReconciliationHandler struct {
	service *reconciliation.Service
}

func NewReconciliationHandler(s *reconciliation.Service) *ReconciliationHandler {
	return &ReconciliationHandler{service: s}
}

// Candidates runs the matching engine over the current order snapshots and
// returns the scored suggestions. Read-only; accepting a candidate goes
// through the mappings endpoint.
func (h *ReconciliationHandler) Candidates(c *gin.Context) {
	candidates, err := h.service.SuggestMappings()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	})
}
