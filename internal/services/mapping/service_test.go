package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/apperrors"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMappingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CommerceOrder{},
		&models.WarehouseOrder{},
		&models.OrderMapping{},
		&models.MappingAuditLog{},
	)
	require.NoError(t, err)

	return db
}

func newTestService(db *gorm.DB) *Service {
	return NewService(
		repository.NewOrderMappingRepository(db),
		repository.NewCommerceOrderRepository(db),
		repository.NewWarehouseOrderRepository(db),
	)
}

func seedOrderPair(t *testing.T, db *gorm.DB) (models.CommerceOrder, models.WarehouseOrder) {
	t.Helper()

	total := 1499.0
	commerce := models.CommerceOrder{
		ID:                uuid.New(),
		ExternalID:        "shopify-1001",
		OrderNumber:       "1001",
		CustomerName:      "Kari Nordmann",
		TotalValue:        &total,
		FulfillmentStatus: "unfulfilled",
		OrderDate:         time.Now(),
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

func TestCreateMappingStoresSnapshots(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	mapping, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeSuggested,
		Confidence:       90,
		MatchReason:      "order number match; customer name match",
		PerformedBy:      "tester",
	})
	require.NoError(t, err)
	require.NotNil(t, mapping)
	assert.True(t, mapping.IsActive)

	var stored models.OrderMapping
	require.NoError(t, db.First(&stored, "id = ?", mapping.ID).Error)

	var commerceSnap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(stored.CommerceSnapshot, &commerceSnap))
	assert.Equal(t, "1001", commerceSnap.OrderNumber)
	assert.Equal(t, "Kari Nordmann", commerceSnap.CustomerName)
	assert.Equal(t, "unfulfilled", commerceSnap.Status)
	require.NotNil(t, commerceSnap.TotalValue)
	assert.InDelta(t, 1499.0, *commerceSnap.TotalValue, 0.001)

	var warehouseSnap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(stored.WarehouseSnapshot, &warehouseSnap))
	assert.Equal(t, "picking", warehouseSnap.Status)

	var auditCount int64
	require.NoError(t, db.Model(&models.MappingAuditLog{}).
		Where("mapping_id = ? AND action = ?", mapping.ID, "create").
		Count(&auditCount).Error)
	assert.Equal(t, int64(1), auditCount)
}

func TestCreateMappingRejectsBadInput(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	_, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      "automatic",
		Confidence:       50,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeManual,
		Confidence:       101,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateMappingUnknownOrderIsNotFound(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, _ := seedOrderPair(t, db)

	_, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: uuid.New(),
		MappingType:      models.MappingTypeManual,
		Confidence:       100,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateMappingSupersedesExistingPair(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	first, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeSuggested,
		Confidence:       60,
		PerformedBy:      "tester",
	})
	require.NoError(t, err)

	second, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeManual,
		Confidence:       100,
		PerformedBy:      "tester",
	})
	require.NoError(t, err)

	var old models.OrderMapping
	require.NoError(t, db.First(&old, "id = ?", first.ID).Error)
	assert.False(t, old.IsActive)
	assert.NotNil(t, old.DeactivatedAt)

	active, err := svc.ListActiveMappings()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestUpdateMappingPartialFields(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	created, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeSuggested,
		Confidence:       70,
	})
	require.NoError(t, err)

	notes := "verified by phone"
	updated, err := svc.UpdateMapping(created.ID, UpdateInput{
		Notes:       &notes,
		PerformedBy: "tester",
	})
	require.NoError(t, err)
	assert.Equal(t, "verified by phone", updated.Notes)
	assert.Equal(t, models.MappingTypeSuggested, updated.MappingType)
	assert.Equal(t, 70, updated.Confidence)
}

func TestUpdateMappingValidation(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)

	_, err := svc.UpdateMapping(uuid.New(), UpdateInput{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	badType := "automatic"
	_, err = svc.UpdateMapping(uuid.New(), UpdateInput{MappingType: &badType})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	conf := 50
	_, err = svc.UpdateMapping(uuid.New(), UpdateInput{Confidence: &conf})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestDeactivateMapping(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	created, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeManual,
		Confidence:       100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateMapping(created.ID, "tester"))

	var stored models.OrderMapping
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.DeactivatedAt)

	err = svc.DeactivateMapping(uuid.New(), "tester")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestFindMapping(t *testing.T) {
	db := setupMappingTestDB(t)
	svc := newTestService(db)
	commerce, warehouse := seedOrderPair(t, db)

	_, err := svc.FindMapping(nil, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	created, err := svc.CreateMapping(CreateInput{
		CommerceOrderID:  commerce.ID,
		WarehouseOrderID: warehouse.ID,
		MappingType:      models.MappingTypeManual,
		Confidence:       100,
	})
	require.NoError(t, err)

	found, err := svc.FindMapping(&commerce.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	other := uuid.New()
	found, err = svc.FindMapping(nil, &other)
	require.NoError(t, err)
	assert.Nil(t, found)
}
