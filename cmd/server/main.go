package main

import (
	"os"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found, relying on system env")
	}

	db := config.InitDB()

	db.AutoMigrate(
		&models.CommerceOrder{},
		&models.WarehouseOrder{},
		&models.PurchaseOrder{},
		&models.Product{},
		&models.OrderMapping{},
		&models.MappingAuditLog{},
		&models.SyncRun{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
