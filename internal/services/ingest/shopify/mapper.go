package shopify

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MapOrder converts a Shopify order into the normalized commerce order.
// Every fallback is an explicit rule:
//   - order number: "name" with the leading "#" stripped, else order_number
//   - customer name: customer first+last, else the order email
//   - total value: parsed total_price; empty string means no total (nil)
//
// An order without a vendor id is unusable and returns an error so the
// caller can skip it.
func MapOrder(o Order) (models.CommerceOrder, error) {
	if o.ID == 0 {
		return models.CommerceOrder{}, fmt.Errorf("order has no id")
	}

	orderNumber := strings.TrimPrefix(strings.TrimSpace(o.Name), "#")
	if orderNumber == "" && o.OrderNumber > 0 {
		orderNumber = strconv.Itoa(o.OrderNumber)
	}

	customerName := ""
	if o.Customer != nil {
		customerName = strings.TrimSpace(strings.TrimSpace(o.Customer.FirstName) + " " + strings.TrimSpace(o.Customer.LastName))
	}
	if customerName == "" {
		customerName = strings.TrimSpace(o.Email)
	}

	totalValue, err := parseTotal(o.TotalPrice)
	if err != nil {
		return models.CommerceOrder{}, err
	}

	lines := make([]models.OrderLine, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		price, _ := strconv.ParseFloat(li.Price, 64)
		lines = append(lines, models.OrderLine{
			SKU:      li.SKU,
			Name:     li.Title,
			Quantity: li.Quantity,
			Price:    price,
		})
	}
	lineItems, _ := json.Marshal(lines)

	orderDate := o.CreatedAt
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return models.CommerceOrder{
		ID:                uuid.New(),
		ExternalID:        strconv.FormatInt(o.ID, 10),
		OrderNumber:       orderNumber,
		CustomerName:      customerName,
		CustomerEmail:     strings.TrimSpace(o.Email),
		TotalValue:        totalValue,
		Currency:          o.Currency,
		FinancialStatus:   o.FinancialStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		OrderDate:         orderDate,
		LineItems:         datatypes.JSON(lineItems),
	}, nil
}

// parseTotal distinguishes "no total" (empty, maps to nil) from a malformed
// total (an error, so the record is skipped rather than stored with a bogus
// zero).
func parseTotal(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid total_price %q: %w", raw, err)
	}
	return &v, nil
}
