package client

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// mockERPClient stands in for the remote ERP until real API credentials are
// provisioned. The catalog and order book match the development fixtures the
// ERP team shared.
type mockERPClient struct {
	products []*ERPProduct
	orders   []*ERPOrder
}

func NewMockERPClient() ERPClient {
	return &mockERPClient{
		products: mockProducts(),
		orders:   mockOrders(),
	}
}

func (m *mockERPClient) FetchProducts(ctx context.Context, filterSKU string) ([]*ERPProduct, error) {
	if filterSKU == "" {
		return m.products, nil
	}

	needle := strings.ToLower(filterSKU)
	var matched []*ERPProduct
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.SKU), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *mockERPClient) FetchProductBySKU(ctx context.Context, sku string) (*ERPProduct, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *mockERPClient) FetchOrders(ctx context.Context, email string) ([]*ERPOrder, error) {
	var matched []*ERPOrder
	for _, o := range m.orders {
		if o.UserEmail == email {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (m *mockERPClient) FetchAllOrders(ctx context.Context) ([]*ERPOrder, error) {
	return m.orders, nil
}

func mockProducts() []*ERPProduct {
	return []*ERPProduct{
		{
			SKU:                    "SKU001",
			Name:                   "Premium Widget A",
			RetailPrice:            price("29.99"),
			WholesalePricePaypal:   price("21.99"),
			WholesalePriceBankWire: price("19.99"),
			Status:                 "in_stock",
			QuantityPerCarton:      ptr(24),
			BoxSize:                ptr("30x20x15 cm"),
		},
		{
			SKU:                    "SKU002",
			Name:                   "Deluxe Gadget B",
			RetailPrice:            price("49.99"),
			WholesalePricePaypal:   price("37.99"),
			WholesalePriceBankWire: price("34.99"),
			Status:                 "presale",
			CutOffDate:             ptr("2024-02-15"),
			QuantityPerCarton:      ptr(12),
			BoxSize:                ptr("40x30x20 cm"),
		},
		{
			SKU:                    "SKU003",
			Name:                   "Standard Item C",
			RetailPrice:            price("15.99"),
			WholesalePricePaypal:   price("11.99"),
			WholesalePriceBankWire: price("9.99"),
			Status:                 "in_stock",
			QuantityPerCarton:      ptr(48),
			BoxSize:                ptr("25x15x10 cm"),
		},
		{
			SKU:                    "SKU004",
			Name:                   "Economy Product D",
			RetailPrice:            price("8.99"),
			WholesalePricePaypal:   price("6.99"),
			WholesalePriceBankWire: price("5.99"),
			Status:                 "in_stock",
			QuantityPerCarton:      ptr(100),
			BoxSize:                ptr("20x10x10 cm"),
		},
		{
			SKU:                    "SKU005",
			Name:                   "Luxury Item E",
			RetailPrice:            price("199.99"),
			WholesalePricePaypal:   price("159.99"),
			WholesalePriceBankWire: price("149.99"),
			Status:                 "presale",
			CutOffDate:             ptr("2024-03-01"),
			QuantityPerCarton:      ptr(6),
			BoxSize:                ptr("50x40x30 cm"),
		},
	}
}

func mockOrders() []*ERPOrder {
	return []*ERPOrder{
		{
			OrderNumber:  "ORD-2024-001",
			UserEmail:    "user@wholesale.com",
			Status:       "shipped",
			ShipmentDate: timePtr("2024-01-20T10:30:00Z"),
			CreatedAt:    mustTime("2024-01-15T10:30:00Z"),
			OrderLines: []ERPOrderLine{
				{SKU: "SKU001", Quantity: 24, TrackingNumber: ptr("TRK123456789"), ShippedAt: timePtr("2024-01-20T10:30:00Z")},
				{SKU: "SKU003", Quantity: 48, TrackingNumber: ptr("TRK123456789"), ShippedAt: timePtr("2024-01-20T10:30:00Z")},
			},
		},
		{
			OrderNumber:  "ORD-2024-002",
			UserEmail:    "user@wholesale.com",
			Status:       "partial",
			ShipmentDate: timePtr("2024-01-22T14:20:00Z"),
			CreatedAt:    mustTime("2024-01-18T14:20:00Z"),
			OrderLines: []ERPOrderLine{
				{SKU: "SKU002", Quantity: 12, TrackingNumber: ptr("TRK987654321"), ShippedAt: timePtr("2024-01-22T14:20:00Z")},
				{SKU: "SKU004", Quantity: 50},
			},
		},
		{
			OrderNumber: "ORD-2024-003",
			UserEmail:   "user@wholesale.com",
			Status:      "pending",
			CreatedAt:   mustTime("2024-01-25T09:15:00Z"),
			OrderLines: []ERPOrderLine{
				{SKU: "SKU005", Quantity: 6},
			},
		},
		{
			OrderNumber:  "ORD-2024-004",
			UserEmail:    "another@example.com",
			Status:       "shipped",
			ShipmentDate: timePtr("2024-01-21T16:45:00Z"),
			CreatedAt:    mustTime("2024-01-20T16:45:00Z"),
			OrderLines: []ERPOrderLine{
				{SKU: "SKU004", Quantity: 100, TrackingNumber: ptr("TRK111222333"), ShippedAt: timePtr("2024-01-21T16:45:00Z")},
			},
		},
		{
			OrderNumber:  "ORD-2024-005",
			UserEmail:    "user@wholesale.com",
			Status:       "shipped",
			ShipmentDate: timePtr("2024-01-28T11:00:00Z"),
			CreatedAt:    mustTime("2024-01-22T11:00:00Z"),
			OrderLines: []ERPOrderLine{
				{SKU: "SKU001", Quantity: 48, TrackingNumber: ptr("TRK444555666"), ShippedAt: timePtr("2024-01-28T11:00:00Z")},
				{SKU: "SKU002", Quantity: 24, TrackingNumber: ptr("TRK444555666"), ShippedAt: timePtr("2024-01-28T11:00:00Z")},
				{SKU: "SKU003", Quantity: 96, TrackingNumber: ptr("TRK777888999"), ShippedAt: timePtr("2024-01-28T11:00:00Z")},
			},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := mustTime(s)
	return &t
}
