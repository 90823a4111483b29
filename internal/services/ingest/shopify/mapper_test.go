package shopify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrderFullPayload(t *testing.T) {
	created := time.Date(2024, 4, 10, 9, 30, 0, 0, time.UTC)
	order, err := MapOrder(Order{
		ID:                450789469,
		Name:              "#1001",
		OrderNumber:       1001,
		Email:             "kari@example.com",
		Customer:          &Customer{FirstName: "Kari", LastName: "Nordmann"},
		TotalPrice:        "1499.00",
		Currency:          "NOK",
		FinancialStatus:   "paid",
		FulfillmentStatus: "fulfilled",
		CreatedAt:         created,
		LineItems: []LineItem{
			{SKU: "SKU-1", Title: "Spade", Quantity: 2, Price: "749.50"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "450789469", order.ExternalID)
	assert.Equal(t, "1001", order.OrderNumber)
	assert.Equal(t, "Kari Nordmann", order.CustomerName)
	require.NotNil(t, order.TotalValue)
	assert.Equal(t, 1499.00, *order.TotalValue)
	assert.Equal(t, created, order.OrderDate)
	assert.JSONEq(t, `[{"sku":"SKU-1","name":"Spade","quantity":2,"price":749.5}]`, string(order.LineItems))
}

func TestMapOrderNameFallsBackToOrderNumber(t *testing.T) {
	order, err := MapOrder(Order{ID: 1, Name: "", OrderNumber: 1002, TotalPrice: "10"})
	require.NoError(t, err)
	assert.Equal(t, "1002", order.OrderNumber)
}

func TestMapOrderCustomerNameFallsBackToEmail(t *testing.T) {
	order, err := MapOrder(Order{ID: 1, Name: "#1", Email: "ola@example.com", TotalPrice: "10"})
	require.NoError(t, err)
	assert.Equal(t, "ola@example.com", order.CustomerName)

	order, err = MapOrder(Order{ID: 1, Name: "#1", Email: "ola@example.com", Customer: &Customer{}, TotalPrice: "10"})
	require.NoError(t, err)
	assert.Equal(t, "ola@example.com", order.CustomerName)
}

func TestMapOrderEmptyTotalIsNil(t *testing.T) {
	order, err := MapOrder(Order{ID: 1, Name: "#1", TotalPrice: ""})
	require.NoError(t, err)
	assert.Nil(t, order.TotalValue)
}

func TestMapOrderRejectsUnusableRecords(t *testing.T) {
	_, err := MapOrder(Order{ID: 0, Name: "#1"})
	assert.Error(t, err)

	_, err = MapOrder(Order{ID: 1, Name: "#1", TotalPrice: "abc"})
	assert.Error(t, err)
}
