package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.CommerceOrder{},
		&models.WarehouseOrder{},
		&models.PurchaseOrder{},
		&models.Product{},
		&models.OrderMapping{},
		&models.MappingAuditLog{},
		&models.SyncRun{},
	))

	r := gin.New()
	RegisterRoutes(r, db)
	return r, db
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedPair(t *testing.T, db *gorm.DB) (models.CommerceOrder, models.WarehouseOrder) {
	t.Helper()

	total := 1499.0
	commerce := models.CommerceOrder{
		ID:           uuid.New(),
		ExternalID:   "shopify-1001",
		OrderNumber:  "1001",
		CustomerName: "Kari Nordmann",
		TotalValue:   &total,
		OrderDate:    time.Now(),
	}
	require.NoError(t, db.Create(&commerce).Error)

	warehouse := models.WarehouseOrder{
		ID:             uuid.New(),
		ExternalID:     "ongoing-9001",
		OrderNumber:    "1001",
		CustomerName:   "Kari Nordmann",
		TotalValue:     &total,
		DeliveryStatus: "picking",
	}
	require.NoError(t, db.Create(&warehouse).Error)

	return commerce, warehouse
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCandidatesEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	seedPair(t, db)

	w := doRequest(r, http.MethodGet, "/api/reconciliation/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count      int `json:"count"`
		Candidates []struct {
			Confidence  int    `json:"confidence"`
			MatchReason string `json:"match_reason"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, 100, resp.Candidates[0].Confidence)
	assert.Contains(t, resp.Candidates[0].MatchReason, "Order number match")
}

func TestMappingLifecycleOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	commerce, warehouse := seedPair(t, db)

	w := doRequest(r, http.MethodPost, "/api/mappings", gin.H{
		"commerce_order_id":  commerce.ID.String(),
		"warehouse_order_id": warehouse.ID.String(),
		"mapping_type":       "manual",
		"confidence":         100,
		"performed_by":       "tester",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Mapping models.OrderMapping `json:"mapping"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Mapping.IsActive)

	w = doRequest(r, http.MethodGet, "/api/mappings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Mappings []models.OrderMapping `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Mappings, 1)

	w = doRequest(r, http.MethodGet, "/api/mappings/find?commerce_order_id="+commerce.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/mappings/"+created.Mapping.ID.String()+"?performed_by=tester", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/mappings", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed.Mappings, 0)
}

func TestCreateMappingBadRequests(t *testing.T) {
	r, db := setupRouter(t)
	commerce, _ := seedPair(t, db)

	w := doRequest(r, http.MethodPost, "/api/mappings", gin.H{
		"commerce_order_id":  "not-a-uuid",
		"warehouse_order_id": uuid.New().String(),
		"mapping_type":       "manual",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/mappings", gin.H{
		"commerce_order_id":  commerce.ID.String(),
		"warehouse_order_id": uuid.New().String(),
		"mapping_type":       "manual",
		"confidence":         100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAtRiskEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	yesterday := time.Now().Add(-24 * time.Hour)
	lineItems, _ := json.Marshal([]models.OrderLine{{SKU: "SKU-1", Name: "Vase", Quantity: 2}})
	order := models.WarehouseOrder{
		ID:             uuid.New(),
		ExternalID:     "ongoing-9002",
		OrderNumber:    "1002",
		CustomerName:   "Ola Nordmann",
		DeliveryDate:   &yesterday,
		DeliveryStatus: "picking",
		LineItems:      lineItems,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.Product{
		ID:         uuid.New(),
		SKU:        "SKU-1",
		Name:       "Vase",
		StockLevel: -5,
		Source:     models.SourceOngoing,
	}).Error)

	w := doRequest(r, http.MethodGet, "/api/orders/at-risk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
		Items []struct {
			BackorderedSKUs []string `json:"backordered_skus"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"SKU-1"}, resp.Items[0].BackorderedSKUs)
}
