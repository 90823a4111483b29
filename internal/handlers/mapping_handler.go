package handler

import (
	"net/http"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/mapping"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MappingHandler struct {
	service *mapping.Service
}

func NewMappingHandler(s *mapping.Service) *MappingHandler {
	return &MappingHandler{service: s}
}

func (h *MappingHandler) Create(c *gin.Context) {
	var payload struct {
		CommerceOrderID  string `json:"commerce_order_id" binding:"required"`
		WarehouseOrderID string `json:"warehouse_order_id" binding:"required"`
		MappingType      string `json:"mapping_type" binding:"required"`
		Confidence       int    `json:"confidence"`
		MatchReason      string `json:"match_reason"`
		Notes            string `json:"notes"`
		PerformedBy      string `json:"performed_by"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	commerceOrderID, err := uuid.Parse(payload.CommerceOrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commerce order ID"})
		return
	}
	warehouseOrderID, err := uuid.Parse(payload.WarehouseOrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse order ID"})
		return
	}

	created, err := h.service.CreateMapping(mapping.CreateInput{
		CommerceOrderID:  commerceOrderID,
		WarehouseOrderID: warehouseOrderID,
		MappingType:      payload.MappingType,
		Confidence:       payload.Confidence,
		MatchReason:      payload.MatchReason,
		Notes:            payload.Notes,
		PerformedBy:      payload.PerformedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mapping": created})
}

func (h *MappingHandler) List(c *gin.Context) {
	mappings, err := h.service.ListActiveMappings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}

func (h *MappingHandler) Find(c *gin.Context) {
	var commerceOrderID, warehouseOrderID *uuid.UUID

	if raw := c.Query("commerce_order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commerce order ID"})
			return
		}
		commerceOrderID = &id
	}
	if raw := c.Query("warehouse_order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse order ID"})
			return
		}
		warehouseOrderID = &id
	}

	found, err := h.service.FindMapping(commerceOrderID, warehouseOrderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mapping": found})
}

func (h *MappingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mapping ID"})
		return
	}

	var payload struct {
		MappingType *string `json:"mapping_type"`
		Confidence  *int    `json:"confidence"`
		Notes       *string `json:"notes"`
		PerformedBy string  `json:"performed_by"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, err := h.service.UpdateMapping(id, mapping.UpdateInput{
		MappingType: payload.MappingType,
		Confidence:  payload.Confidence,
		Notes:       payload.Notes,
		PerformedBy: payload.PerformedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mapping": updated})
}

func (h *MappingHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mapping ID"})
		return
	}

	if err := h.service.DeactivateMapping(id, c.Query("performed_by")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "mapping deactivated"})
}
