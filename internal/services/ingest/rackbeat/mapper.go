package rackbeat

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MapPurchaseOrder converts a Rackbeat purchase order into the normalized
// model. Fallback rules:
//   - status: lowercased vendor status, "draft" when empty
//   - expected date: RFC3339 or date-only; unparseable means nil
//
// A purchase order without a number is unusable.
func MapPurchaseOrder(po PurchaseOrder) (models.PurchaseOrder, error) {
	number := strings.TrimSpace(po.Number.String())
	if number == "" || number == "0" {
		return models.PurchaseOrder{}, fmt.Errorf("purchase order has no number")
	}

	status := strings.ToLower(strings.TrimSpace(po.Status))
	if status == "" {
		status = "draft"
	}

	lines := make([]models.OrderLine, 0, len(po.Lines))
	for _, line := range po.Lines {
		lines = append(lines, models.OrderLine{
			SKU:      line.ItemNumber,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
		})
	}
	rawLines, _ := json.Marshal(lines)

	return models.PurchaseOrder{
		ID:           uuid.New(),
		ExternalID:   number,
		Number:       number,
		SupplierName: strings.TrimSpace(po.Supplier.Name),
		Status:       status,
		ExpectedDate: parseExpectedDate(po.ExpectedDeliveryDate),
		TotalValue:   po.TotalAmount,
		Lines:        datatypes.JSON(rawLines),
	}, nil
}

func parseExpectedDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
