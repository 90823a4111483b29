package ongoing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
)

// Order is the subset of the Ongoing WMS order payload the ingestion uses.
// DeliveryInfo carries the vendor's free-text status encoding; see the
// delivery package for its format.
type Order struct {
	OrderID       int         `json:"orderId"`
	OrderNumber   string      `json:"orderNumber"`
	Consignee     Consignee   `json:"consignee"`
	CustomerPrice *float64    `json:"customerPrice"`
	DeliveryDate  string      `json:"deliveryDate"`
	DeliveryInfo  string      `json:"deliveryInfo"`
	OrderLines    []OrderLine `json:"orderLines"`
}

type Consignee struct {
	Name string `json:"name"`
}

type OrderLine struct {
	ArticleNumber string  `json:"articleNumber"`
	ArticleName   string  `json:"articleName"`
	NumberOfItems int     `json:"numberOfItems"`
	LinePrice     float64 `json:"linePrice"`
}

// Article is the stock view per SKU. NumberAvailable goes negative when the
// warehouse has allocated more than it holds.
type Article struct {
	ArticleNumber   string `json:"articleNumber"`
	ArticleName     string `json:"articleName"`
	NumberAvailable int    `json:"numberAvailable"`
}

// Client talks to the Ongoing WMS REST API with basic auth. All credentials
// come in through the config struct.
type Client struct {
	cfg        config.OngoingConfig
	httpClient *http.Client
}

func NewClient(cfg config.OngoingConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchOrders pages through the order list with offset pagination until a
// short page.
func (c *Client) FetchOrders() ([]Order, error) {
	const pageSize = 200

	var all []Order
	for offset := 0; ; offset += pageSize {
		endpoint := fmt.Sprintf("%s/api/v1/orders?goodsOwnerId=%s&maxOrdersToGet=%d&skip=%d",
			c.cfg.BaseURL, c.cfg.GoodsOwnerID, pageSize, offset)

		var page []Order
		if err := c.get(endpoint, &page); err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
	}

	return all, nil
}

func (c *Client) FetchArticles() ([]Article, error) {
	endpoint := fmt.Sprintf("%s/api/v1/articles?goodsOwnerId=%s", c.cfg.BaseURL, c.cfg.GoodsOwnerID)

	var articles []Article
	if err := c.get(endpoint, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ongoing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ongoing returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ongoing response: %w", err)
	}
	return nil
}
