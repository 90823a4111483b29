package ongoing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/delivery"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MapOrder converts an Ongoing WMS order into the normalized warehouse
// order. Fallback rules:
//   - order number: orderNumber, else the numeric orderId
//   - customer name: consignee name, trimmed; may be empty
//   - delivery date: parsed from RFC3339 or date-only; unparseable means nil
//   - delivery status: parsed from the free-text deliveryInfo encoding;
//     a malformed encoding degrades to "unknown" instead of failing the row
func MapOrder(o Order) (models.WarehouseOrder, error) {
	if o.OrderID == 0 {
		return models.WarehouseOrder{}, fmt.Errorf("order has no id")
	}

	orderNumber := strings.TrimSpace(o.OrderNumber)
	if orderNumber == "" {
		orderNumber = strconv.Itoa(o.OrderID)
	}

	deliveryDate := parseDeliveryDate(o.DeliveryDate)

	info, err := delivery.Parse(o.DeliveryInfo)
	status := string(info.Status)
	if err != nil && o.DeliveryInfo != "" {
		// Report-and-continue: keep the row, lose only the status detail.
		status = string(delivery.StatusUnknown)
	}

	lines := make([]models.OrderLine, 0, len(o.OrderLines))
	for _, line := range o.OrderLines {
		lines = append(lines, models.OrderLine{
			SKU:      line.ArticleNumber,
			Name:     line.ArticleName,
			Quantity: line.NumberOfItems,
			Price:    line.LinePrice,
		})
	}
	lineItems, _ := json.Marshal(lines)

	metadata, _ := json.Marshal(map[string]string{
		"delivery_info": o.DeliveryInfo,
	})

	return models.WarehouseOrder{
		ID:             uuid.New(),
		ExternalID:     strconv.Itoa(o.OrderID),
		OrderNumber:    orderNumber,
		CustomerName:   strings.TrimSpace(o.Consignee.Name),
		TotalValue:     o.CustomerPrice,
		DeliveryDate:   deliveryDate,
		DeliveryStatus: status,
		Metadata:       datatypes.JSON(metadata),
		LineItems:      datatypes.JSON(lineItems),
	}, nil
}

func parseDeliveryDate(raw string) *time.Time {
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

// MapArticle converts an Ongoing stock article into a product row.
func MapArticle(a Article) (models.Product, error) {
	sku := strings.TrimSpace(a.ArticleNumber)
	if sku == "" {
		return models.Product{}, fmt.Errorf("article has no article number")
	}

	return models.Product{
		ID:           uuid.New(),
		SKU:          sku,
		Name:         strings.TrimSpace(a.ArticleName),
		StockLevel:   a.NumberAvailable,
		Source:       models.SourceOngoing,
		LastSyncedAt: time.Now(),
	}, nil
}
