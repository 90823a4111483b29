package handler

import (
	"net/http"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps error kinds onto HTTP statuses. Persistence failures are
// never reported as success.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsKind(err, apperrors.KindNotFound):
		status = http.StatusNotFound
	case apperrors.IsKind(err, apperrors.KindValidation):
		status = http.StatusBadRequest
	case apperrors.IsKind(err, apperrors.KindUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
