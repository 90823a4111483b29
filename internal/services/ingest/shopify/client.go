package shopify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
)

// Order is the subset of the Shopify Admin API order payload the ingestion
// uses. Everything else in the vendor payload is ignored.
type Order struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	OrderNumber       int        `json:"order_number"`
	Email             string     `json:"email"`
	Customer          *Customer  `json:"customer"`
	TotalPrice        string     `json:"total_price"`
	Currency          string     `json:"currency"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	CreatedAt         time.Time  `json:"created_at"`
	LineItems         []LineItem `json:"line_items"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LineItem struct {
	SKU      string `json:"sku"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type ordersResponse struct {
	Orders []Order `json:"orders"`
}

// Client talks to the Shopify Admin REST API. Credentials come in through
// the config struct; the client holds no global state.
type Client struct {
	cfg        config.ShopifyConfig
	httpClient *http.Client
}

func NewClient(cfg config.ShopifyConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var linkNextRe = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// FetchOrders pages through /orders.json using Shopify's cursor-based Link
// header until the last page.
func (c *Client) FetchOrders() ([]Order, error) {
	endpoint := fmt.Sprintf("https://%s/admin/api/%s/orders.json?status=any&limit=250",
		c.cfg.ShopDomain, c.cfg.APIVersion)

	var all []Order
	for endpoint != "" {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Shopify-Access-Token", c.cfg.AccessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("shopify request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("shopify returned status %d", resp.StatusCode)
		}

		var page ordersResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to decode shopify response: %w", err)
		}
		link := resp.Header.Get("Link")
		resp.Body.Close()

		all = append(all, page.Orders...)
		endpoint = nextPageURL(link)
	}

	return all, nil
}

func nextPageURL(linkHeader string) string {
	m := linkNextRe.FindStringSubmatch(linkHeader)
	if m == nil {
		return ""
	}
	if _, err := url.Parse(m[1]); err != nil {
		return ""
	}
	return m[1]
}
