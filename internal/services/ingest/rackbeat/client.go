package rackbeat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
)

// PurchaseOrder is the subset of the Rackbeat purchase-order payload the
// ingestion uses.
type PurchaseOrder struct {
	Number               json.Number `json:"number"`
	Supplier             Supplier    `json:"supplier"`
	Status               string      `json:"status"`
	ExpectedDeliveryDate string      `json:"expected_delivery_date"`
	TotalAmount          *float64    `json:"total_amount"`
	Lines                []Line      `json:"lines"`
}

type Supplier struct {
	Name string `json:"name"`
}

type Line struct {
	ItemNumber string  `json:"item_number"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type purchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrder `json:"purchase_orders"`
	Pages          int             `json:"pages"`
}

// Client talks to the Rackbeat API with a bearer token from the config
// struct.
type Client struct {
	cfg        config.RackbeatConfig
	httpClient *http.Client
}

func NewClient(cfg config.RackbeatConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPurchaseOrders walks the numbered pages reported by the API.
func (c *Client) FetchPurchaseOrders() ([]PurchaseOrder, error) {
	var all []PurchaseOrder

	page := 1
	for {
		endpoint := fmt.Sprintf("%s/purchase-orders?page=%d&limit=100", c.cfg.BaseURL, page)

		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("rackbeat request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("rackbeat returned status %d", resp.StatusCode)
		}

		var body purchaseOrdersResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to decode rackbeat response: %w", err)
		}
		resp.Body.Close()

		all = append(all, body.PurchaseOrders...)
		if page >= body.Pages {
			break
		}
		page++
	}

	return all, nil
}
