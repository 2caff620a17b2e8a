package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wholesale-portal/internal/config"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSourceUnavailable = errors.New("erp source unavailable")
)

// Source-native record shapes as the ERP returns them on the wire.
// Downstream consumers work with the canonical model types instead.

type ERPProduct struct {
	SKU                    string          `json:"sku"`
	Name                   string          `json:"name"`
	RetailPrice            decimal.Decimal `json:"retail_price"`
	WholesalePricePaypal   decimal.Decimal `json:"wholesale_price_paypal"`
	WholesalePriceBankWire decimal.Decimal `json:"wholesale_price_bank_wire"`
	Status                 string          `json:"status"`
	CutOffDate             *string         `json:"cut_off_date"`
	QuantityPerCarton      *int            `json:"quantity_per_carton"`
	BoxSize                *string         `json:"box_size"`
}

type ERPOrderLine struct {
	SKU            string     `json:"sku"`
	Quantity       int        `json:"quantity"`
	TrackingNumber *string    `json:"tracking_number"`
	ShippedAt      *time.Time `json:"shipped_at"`
}

type ERPOrder struct {
	OrderNumber  string         `json:"order_number"`
	UserEmail    string         `json:"user_email"`
	Status       string         `json:"status"`
	ShipmentDate *time.Time     `json:"shipment_date"`
	CreatedAt    time.Time      `json:"created_at"`
	OrderLines   []ERPOrderLine `json:"order_lines"`
}

// ERPClient is the read-only adapter over the external system of record.
// FetchProducts filters by case-insensitive SKU substring when filterSKU is
// non-empty; FetchOrders returns only orders whose user_email equals email
// exactly. Remote failures surface as ErrSourceUnavailable, never as stale
// or empty data.
type ERPClient interface {
	FetchProducts(ctx context.Context, filterSKU string) ([]*ERPProduct, error)
	FetchProductBySKU(ctx context.Context, sku string) (*ERPProduct, error)
	FetchOrders(ctx context.Context, email string) ([]*ERPOrder, error)
	FetchAllOrders(ctx context.Context) ([]*ERPOrder, error)
}

type erpClientImpl struct {
	httpClient *http.Client
	baseAPIURL string
	apiKey     string
}

// NewERPClient returns the HTTP adapter, or the in-process mock source when
// no ERP base URL is configured.
func NewERPClient(erpCfg *config.ERP) ERPClient {
	if erpCfg.BaseAPIURL == "" {
		return NewMockERPClient()
	}
	return &erpClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL: erpCfg.BaseAPIURL,
		apiKey:     erpCfg.APIKey,
	}
}

func (c *erpClientImpl) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseAPIURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode erp response: %w", err)
	}
	return nil
}

func (c *erpClientImpl) FetchProducts(ctx context.Context, filterSKU string) ([]*ERPProduct, error) {
	query := url.Values{}
	if filterSKU != "" {
		query.Set("sku", filterSKU)
	}

	var res struct {
		Products []*ERPProduct `json:"products"`
	}
	if err := c.getJSON(ctx, "/products", query, &res); err != nil {
		return nil, fmt.Errorf("fetch erp products: %w", err)
	}
	return res.Products, nil
}

func (c *erpClientImpl) FetchProductBySKU(ctx context.Context, sku string) (*ERPProduct, error) {
	var res struct {
		Product *ERPProduct `json:"product"`
	}
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(sku), nil, &res); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("fetch erp product %s: %w", sku, err)
	}
	if res.Product == nil {
		return nil, ErrProductNotFound
	}
	return res.Product, nil
}

func (c *erpClientImpl) FetchOrders(ctx context.Context, email string) ([]*ERPOrder, error) {
	query := url.Values{}
	query.Set("email", email)

	var res struct {
		Orders []*ERPOrder `json:"orders"`
	}
	if err := c.getJSON(ctx, "/orders", query, &res); err != nil {
		return nil, fmt.Errorf("fetch erp orders: %w", err)
	}
	return res.Orders, nil
}

func (c *erpClientImpl) FetchAllOrders(ctx context.Context) ([]*ERPOrder, error) {
	var res struct {
		Orders []*ERPOrder `json:"orders"`
	}
	if err := c.getJSON(ctx, "/orders", nil, &res); err != nil {
		return nil, fmt.Errorf("fetch all erp orders: %w", err)
	}
	return res.Orders, nil
}
