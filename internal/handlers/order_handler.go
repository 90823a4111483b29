package handler

import (
	"net/http"
	"strconv"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/atrisk"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

type OrderHandler struct {
	commerceRepo  *repository.CommerceOrderRepository
	warehouseRepo *repository.WarehouseOrderRepository
	purchaseRepo  *repository.PurchaseOrderRepository
	productRepo   *repository.ProductRepository
	atRiskService *atrisk.Service
}

func NewOrderHandler(
	commerceRepo *repository.CommerceOrderRepository,
	warehouseRepo *repository.WarehouseOrderRepository,
	purchaseRepo *repository.PurchaseOrderRepository,
	productRepo *repository.ProductRepository,
	atRiskService *atrisk.Service,
) *OrderHandler {
	return &OrderHandler{
		commerceRepo:  commerceRepo,
		warehouseRepo: warehouseRepo,
		purchaseRepo:  purchaseRepo,
		productRepo:   productRepo,
		atRiskService: atRiskService,
	}
}

func pageSize(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 || limit > 200 {
		return defaultPageSize
	}
	return limit
}

func (h *OrderHandler) ListCommerceOrders(c *gin.Context) {
	items, nextCursor, hasMore, err := h.commerceRepo.List(
		c.Query("status"), c.Query("cursor"), c.Query("search"), pageSize(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"next_cursor": nextCursor,
		"has_more":    hasMore,
	})
}

func (h *OrderHandler) ListWarehouseOrders(c *gin.Context) {
	items, nextCursor, hasMore, err := h.warehouseRepo.List(
		c.Query("status"), c.Query("cursor"), c.Query("search"), pageSize(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"next_cursor": nextCursor,
		"has_more":    hasMore,
	})
}

func (h *OrderHandler) ListPurchaseOrders(c *gin.Context) {
	items, err := h.purchaseRepo.List(c.Query("status"), pageSize(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *OrderHandler) ListProducts(c *gin.Context) {
	items, err := h.productRepo.List(pageSize(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AtRiskOrders returns warehouse orders that are overdue and carry at least
// one backordered line item.
func (h *OrderHandler) AtRiskOrders(c *gin.Context) {
	flagged, err := h.atRiskService.AtRiskOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": flagged,
		"count": len(flagged),
	})
}
