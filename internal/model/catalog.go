package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical product and order shapes served by the API. These are sourced
// fresh from the ERP on every read and never persisted here.

type Product struct {
	SKU                    string          `json:"sku"`
	Name                   string          `json:"name"`
	RetailPrice            decimal.Decimal `json:"retailPrice"`
	WholesalePricePaypal   decimal.Decimal `json:"wholesalePricePaypal"`
	WholesalePriceBankWire decimal.Decimal `json:"wholesalePriceBankWire"`
	Status                 string          `json:"status"` // in_stock, presale
	CutOffDate             *string         `json:"cutOffDate"`
	QuantityPerCarton      *int            `json:"quantityPerCarton"`
	BoxSize                *string         `json:"boxSize"`
}

// OrderLine tracking fields are correlated: TrackingNumber is nil exactly
// when ShippedAt is nil.
type OrderLine struct {
	SKU            string     `json:"sku"`
	Quantity       int        `json:"quantity"`
	TrackingNumber *string    `json:"trackingNumber"`
	ShippedAt      *time.Time `json:"shippedAt"`
}

type Order struct {
	OrderNumber  string      `json:"orderNumber"`
	UserEmail    string      `json:"userEmail"`
	Status       string      `json:"status"` // pending, processing, partial, shipped, delivered
	ShipmentDate *time.Time  `json:"shipmentDate"`
	CreatedAt    time.Time   `json:"createdAt"`
	OrderLines   []OrderLine `json:"orderLines"`
}
