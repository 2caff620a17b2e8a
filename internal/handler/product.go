package handler

import (
	"errors"
	"net/http"

	"wholesale-portal/internal/client"
	"wholesale-portal/internal/dto"
	"wholesale-portal/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.GetProducts(ctx, c.QueryParam("sku"))
	if err != nil {
		if errors.Is(err, client.ErrSourceUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "product source unavailable")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.ProductsResponse{Products: products})
}

func (h *ProductHandler) GetProductBySKU(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.GetProductBySKU(ctx, c.Param("sku"))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrProductNotFound):
			return echo.NewHTTPError(http.StatusNotFound, client.ErrProductNotFound.Error())
		case errors.Is(err, client.ErrSourceUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "product source unavailable")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.ProductResponse{Product: product})
}
