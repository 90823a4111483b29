package rackbeat

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPurchaseOrderFullPayload(t *testing.T) {
	total := 12500.0
	po, err := MapPurchaseOrder(PurchaseOrder{
		Number:               json.Number("2024-17"),
		Supplier:             Supplier{Name: "Gartnergrossisten AS"},
		Status:               "Booked",
		ExpectedDeliveryDate: "2024-06-15",
		TotalAmount:          &total,
		Lines: []Line{
			{ItemNumber: "SKU-9", Name: "Plantejord 50L", Quantity: 40, UnitPrice: 312.50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-17", po.ExternalID)
	assert.Equal(t, "Gartnergrossisten AS", po.SupplierName)
	assert.Equal(t, "booked", po.Status)
	require.NotNil(t, po.ExpectedDate)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), po.ExpectedDate.UTC())
	require.NotNil(t, po.TotalValue)
	assert.Equal(t, 12500.0, *po.TotalValue)
}

func TestMapPurchaseOrderDefaults(t *testing.T) {
	po, err := MapPurchaseOrder(PurchaseOrder{Number: json.Number("7")})
	require.NoError(t, err)
	assert.Equal(t, "draft", po.Status)
	assert.Nil(t, po.ExpectedDate)
	assert.Nil(t, po.TotalValue)
}

func TestMapPurchaseOrderRejectsMissingNumber(t *testing.T) {
	_, err := MapPurchaseOrder(PurchaseOrder{})
	assert.Error(t, err)

	_, err = MapPurchaseOrder(PurchaseOrder{Number: json.Number("0")})
	assert.Error(t, err)
}
