package service

import (
	"context"
	"testing"

	"wholesale-portal/internal/client"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductsFullCatalog(t *testing.T) {
	svc := NewProductService(client.NewMockERPClient())

	products, err := svc.GetProducts(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, products, 5)
	assert.Equal(t, "SKU001", products[0].SKU)
	assert.Equal(t, "Premium Widget A", products[0].Name)
}

func TestGetProductsPassesFilterToSource(t *testing.T) {
	svc := NewProductService(client.NewMockERPClient())

	products, err := svc.GetProducts(context.Background(), "005")
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "SKU005", products[0].SKU)
}

func TestGetProductBySKUNotFound(t *testing.T) {
	svc := NewProductService(client.NewMockERPClient())

	_, err := svc.GetProductBySKU(context.Background(), "NOPE")
	assert.ErrorIs(t, err, client.ErrProductNotFound)
}

func TestNormalizeProductFieldIdentity(t *testing.T) {
	cutOff := "2024-02-15"
	perCarton := 12
	boxSize := "40x30x20 cm"
	src := &client.ERPProduct{
		SKU:                    "SKU002",
		Name:                   "Deluxe Gadget B",
		RetailPrice:            decimal.RequireFromString("49.99"),
		WholesalePricePaypal:   decimal.RequireFromString("37.99"),
		WholesalePriceBankWire: decimal.RequireFromString("34.99"),
		Status:                 "presale",
		CutOffDate:             &cutOff,
		QuantityPerCarton:      &perCarton,
		BoxSize:                &boxSize,
	}

	product := normalizeProduct(src)

	assert.Equal(t, src.SKU, product.SKU)
	assert.Equal(t, src.Name, product.Name)
	assert.True(t, product.RetailPrice.Equal(src.RetailPrice))
	assert.True(t, product.WholesalePricePaypal.Equal(src.WholesalePricePaypal))
	assert.True(t, product.WholesalePriceBankWire.Equal(src.WholesalePriceBankWire))
	assert.Equal(t, src.Status, product.Status)
	assert.Equal(t, src.CutOffDate, product.CutOffDate)
	assert.Equal(t, src.QuantityPerCarton, product.QuantityPerCarton)
	assert.Equal(t, src.BoxSize, product.BoxSize)

	// normalization is deterministic
	assert.Equal(t, product, normalizeProduct(src))
}
