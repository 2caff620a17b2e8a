package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"wholesale-portal/internal/auth"
	"wholesale-portal/internal/client"
	"wholesale-portal/internal/model"
	"wholesale-portal/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	OrdersFor(ctx context.Context, identity auth.Identity) ([]*model.Order, error)
}

type orderServiceImpl struct {
	erpClient client.ERPClient
	userRepo  repository.UserRepository
}

func NewOrderService(erpClient client.ERPClient, userRepo repository.UserRepository) OrderService {
	return &orderServiceImpl{
		erpClient: erpClient,
		userRepo:  userRepo,
	}
}

// OrdersFor routes the caller to a visibility path: admins see every order,
// everyone else only orders whose user_email equals their account email.
// The email is re-read from the account store on each call so an address
// change takes effect without a new login.
func (s *orderServiceImpl) OrdersFor(ctx context.Context, identity auth.Identity) ([]*model.Order, error) {
	if identity.UserID == 0 {
		return nil, ErrUnauthenticated
	}

	if identity.IsAdmin() {
		return s.ordersForAdmin(ctx)
	}

	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", identity.UserID, err)
	}

	return s.ordersForUser(ctx, user.Email)
}

func (s *orderServiceImpl) ordersForUser(ctx context.Context, email string) ([]*model.Order, error) {
	src, err := s.erpClient.FetchOrders(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("fetch user orders: %w", err)
	}
	return sortOrders(normalizeOrders(src)), nil
}

func (s *orderServiceImpl) ordersForAdmin(ctx context.Context) ([]*model.Order, error) {
	src, err := s.erpClient.FetchAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch all orders: %w", err)
	}
	return sortOrders(normalizeOrders(src)), nil
}

func normalizeOrders(src []*client.ERPOrder) []*model.Order {
	orders := make([]*model.Order, len(src))
	for i, o := range src {
		orders[i] = normalizeOrder(o)
	}
	return orders
}

// normalizeOrder maps an ERP order 1:1 into the canonical shape. Line order
// is preserved from the source.
func normalizeOrder(src *client.ERPOrder) *model.Order {
	lines := make([]model.OrderLine, len(src.OrderLines))
	for i, l := range src.OrderLines {
		lines[i] = normalizeOrderLine(l)
	}

	return &model.Order{
		OrderNumber:  src.OrderNumber,
		UserEmail:    src.UserEmail,
		Status:       src.Status,
		ShipmentDate: src.ShipmentDate,
		CreatedAt:    src.CreatedAt,
		OrderLines:   lines,
	}
}

func normalizeOrderLine(src client.ERPOrderLine) model.OrderLine {
	return model.OrderLine{
		SKU:            src.SKU,
		Quantity:       src.Quantity,
		TrackingNumber: src.TrackingNumber,
		ShippedAt:      src.ShippedAt,
	}
}

// sortOrders puts the most recently shipped orders first and every order
// without a shipment date after all dated ones. The sort is stable, so equal
// dates and undated pairs keep their source order.
func sortOrders(orders []*model.Order) []*model.Order {
	slices.SortStableFunc(orders, compareByShipmentDate)
	return orders
}

func compareByShipmentDate(a, b *model.Order) int {
	switch {
	case a.ShipmentDate == nil && b.ShipmentDate == nil:
		return 0
	case a.ShipmentDate == nil:
		return 1
	case b.ShipmentDate == nil:
		return -1
	}
	return b.ShipmentDate.Compare(*a.ShipmentDate)
}
