package handler

import (
	"errors"
	"net/http"

	"wholesale-portal/internal/client"
	"wholesale-portal/internal/dto"
	"wholesale-portal/internal/middleware"
	"wholesale-portal/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.OrdersFor(ctx, middleware.IdentityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return echo.NewHTTPError(http.StatusUnauthorized, service.ErrUnauthenticated.Error())
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, service.ErrUserNotFound.Error())
		case errors.Is(err, client.ErrSourceUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "order source unavailable")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.OrdersResponse{Orders: orders})
}
