package service

import (
	"context"
	"fmt"

	"wholesale-portal/internal/client"
	"wholesale-portal/internal/model"
)

type ProductService interface {
	GetProducts(ctx context.Context, searchSKU string) ([]*model.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*model.Product, error)
}

type productServiceImpl struct {
	erpClient client.ERPClient
}

func NewProductService(erpClient client.ERPClient) ProductService {
	return &productServiceImpl{
		erpClient: erpClient,
	}
}

func (s *productServiceImpl) GetProducts(ctx context.Context, searchSKU string) ([]*model.Product, error) {
	src, err := s.erpClient.FetchProducts(ctx, searchSKU)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]*model.Product, len(src))
	for i, p := range src {
		products[i] = normalizeProduct(p)
	}
	return products, nil
}

func (s *productServiceImpl) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	src, err := s.erpClient.FetchProductBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return normalizeProduct(src), nil
}

// normalizeProduct is a 1:1 field mapping from the ERP wire shape; no
// derived fields, no validation beyond type coercion at decode time.
func normalizeProduct(src *client.ERPProduct) *model.Product {
	return &model.Product{
		SKU:                    src.SKU,
		Name:                   src.Name,
		RetailPrice:            src.RetailPrice,
		WholesalePricePaypal:   src.WholesalePricePaypal,
		WholesalePriceBankWire: src.WholesalePriceBankWire,
		Status:                 src.Status,
		CutOffDate:             src.CutOffDate,
		QuantityPerCarton:      src.QuantityPerCarton,
		BoxSize:                src.BoxSize,
	}
}
