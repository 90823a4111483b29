package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
	handler "github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/handlers"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/atrisk"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/ongoing"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/rackbeat"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/shopify"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/mapping"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	commerceRepo := repository.NewCommerceOrderRepository(db)
	warehouseRepo := repository.NewWarehouseOrderRepository(db)
	purchaseRepo := repository.NewPurchaseOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	mappingRepo := repository.NewOrderMappingRepository(db)
	runRepo := repository.NewSyncRunRepository(db)

	reconService := reconciliation.NewService(commerceRepo, warehouseRepo)
	mappingService := mapping.NewService(mappingRepo, commerceRepo, warehouseRepo)
	atRiskService := atrisk.NewService(warehouseRepo, productRepo)
	ingestService := ingest.NewService(
		runRepo, commerceRepo, warehouseRepo, purchaseRepo, productRepo,
		shopify.NewClient(config.LoadShopifyConfig()),
		ongoing.NewClient(config.LoadOngoingConfig()),
		rackbeat.NewClient(config.LoadRackbeatConfig()),
		config.GetLogger(),
	)

	reconHandler := handler.NewReconciliationHandler(reconService)
	mappingHandler := handler.NewMappingHandler(mappingService)
	orderHandler := handler.NewOrderHandler(commerceRepo, warehouseRepo, purchaseRepo, productRepo, atRiskService)
	syncHandler := handler.NewSyncHandler(ingestService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Ingestion runs
	sync := api.Group("/sync")
	sync.POST("/:source", syncHandler.Start)
	sync.GET("/runs/:id", syncHandler.GetProgress)

	// Normalized order views
	orders := api.Group("/orders")
	orders.GET("/commerce", orderHandler.ListCommerceOrders)
	orders.GET("/warehouse", orderHandler.ListWarehouseOrders)
	orders.GET("/at-risk", orderHandler.AtRiskOrders)

	api.GET("/purchase-orders", orderHandler.ListPurchaseOrders)
	api.GET("/products", orderHandler.ListProducts)

	// Reconciliation
	recon := api.Group("/reconciliation")
	recon.GET("/candidates", reconHandler.Candidates)

	// Mappings
	mappings := api.Group("/mappings")
	mappings.POST("", mappingHandler.Create)
	mappings.GET("", mappingHandler.List)
	mappings.GET("/find", mappingHandler.Find)
	mappings.PATCH("/:id", mappingHandler.Update)
	mappings.DELETE("/:id", mappingHandler.Deactivate)
}
