package service

import (
	"context"
	"testing"
	"time"

	"wholesale-portal/internal/auth"
	"wholesale-portal/internal/client"
	"wholesale-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubERPClient struct {
	orders []*client.ERPOrder
	err    error
}

func (s *stubERPClient) FetchProducts(ctx context.Context, filterSKU string) ([]*client.ERPProduct, error) {
	return nil, s.err
}

func (s *stubERPClient) FetchProductBySKU(ctx context.Context, sku string) (*client.ERPProduct, error) {
	return nil, s.err
}

func (s *stubERPClient) FetchOrders(ctx context.Context, email string) ([]*client.ERPOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	var matched []*client.ERPOrder
	for _, o := range s.orders {
		if o.UserEmail == email {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *stubERPClient) FetchAllOrders(ctx context.Context) ([]*client.ERPOrder, error) {
	return s.orders, s.err
}

type stubUserRepo struct {
	users map[uint]*model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*model.User, error)  { return nil, nil }
func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error  { return nil }
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return nil
}
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error { return nil }

func orderWithDate(num string, shipped *time.Time) *model.Order {
	return &model.Order{OrderNumber: num, ShipmentDate: shipped}
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &parsed
}

func orderNumbers(orders []*model.Order) []string {
	nums := make([]string, len(orders))
	for i, o := range orders {
		nums[i] = o.OrderNumber
	}
	return nums
}

func TestSortOrdersMostRecentFirstUnshippedLast(t *testing.T) {
	orders := []*model.Order{
		orderWithDate("A", nil),
		orderWithDate("B", datePtr(t, "2024-01-20T00:00:00Z")),
		orderWithDate("C", datePtr(t, "2024-01-28T00:00:00Z")),
		orderWithDate("D", nil),
	}

	sorted := sortOrders(orders)
	assert.Equal(t, []string{"C", "B", "A", "D"}, orderNumbers(sorted))

	// repeated application does not change the result
	sorted = sortOrders(sorted)
	assert.Equal(t, []string{"C", "B", "A", "D"}, orderNumbers(sorted))
}

func TestSortOrdersStableOnEqualDates(t *testing.T) {
	date := datePtr(t, "2024-01-22T14:20:00Z")
	orders := []*model.Order{
		orderWithDate("first-dated", date),
		orderWithDate("second-dated", date),
		orderWithDate("first-pending", nil),
		orderWithDate("second-pending", nil),
	}

	sorted := sortOrders(orders)
	assert.Equal(t, []string{"first-dated", "second-dated", "first-pending", "second-pending"}, orderNumbers(sorted))
}

func TestOrdersForAdminSeesEveryOrder(t *testing.T) {
	svc := NewOrderService(client.NewMockERPClient(), &stubUserRepo{})

	orders, err := svc.OrdersFor(context.Background(), auth.Identity{
		UserID: 1,
		Email:  "admin@wholesale.com",
		Role:   auth.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Len(t, orders, 5)
	assert.Equal(t, []string{
		"ORD-2024-005",
		"ORD-2024-002",
		"ORD-2024-004",
		"ORD-2024-001",
		"ORD-2024-003",
	}, orderNumbers(orders))
}

func TestOrdersForUserSeesOnlyOwnOrders(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*model.User{
		2: {ID: 2, Email: "user@wholesale.com", Role: auth.RoleUser},
	}}
	svc := NewOrderService(client.NewMockERPClient(), repo)

	orders, err := svc.OrdersFor(context.Background(), auth.Identity{
		UserID: 2,
		Email:  "user@wholesale.com",
		Role:   auth.RoleUser,
	})
	require.NoError(t, err)

	require.Len(t, orders, 4)
	for _, o := range orders {
		assert.Equal(t, "user@wholesale.com", o.UserEmail)
	}
	assert.Equal(t, []string{
		"ORD-2024-005",
		"ORD-2024-002",
		"ORD-2024-001",
		"ORD-2024-003",
	}, orderNumbers(orders))
}

func TestOrdersForMatchesCurrentAccountEmail(t *testing.T) {
	// the email stored on the account wins over the one in the token
	repo := &stubUserRepo{users: map[uint]*model.User{
		2: {ID: 2, Email: "another@example.com", Role: auth.RoleUser},
	}}
	svc := NewOrderService(client.NewMockERPClient(), repo)

	orders, err := svc.OrdersFor(context.Background(), auth.Identity{
		UserID: 2,
		Email:  "user@wholesale.com",
		Role:   auth.RoleUser,
	})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-2024-004", orders[0].OrderNumber)
}

func TestOrdersForUnauthenticated(t *testing.T) {
	svc := NewOrderService(client.NewMockERPClient(), &stubUserRepo{})

	_, err := svc.OrdersFor(context.Background(), auth.Identity{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestOrdersForUnknownUser(t *testing.T) {
	svc := NewOrderService(client.NewMockERPClient(), &stubUserRepo{})

	_, err := svc.OrdersFor(context.Background(), auth.Identity{UserID: 99, Role: auth.RoleUser})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOrdersForSourceUnavailable(t *testing.T) {
	erp := &stubERPClient{err: client.ErrSourceUnavailable}
	svc := NewOrderService(erp, &stubUserRepo{users: map[uint]*model.User{
		2: {ID: 2, Email: "user@wholesale.com", Role: auth.RoleUser},
	}})

	_, err := svc.OrdersFor(context.Background(), auth.Identity{UserID: 2, Role: auth.RoleUser})
	assert.ErrorIs(t, err, client.ErrSourceUnavailable)

	_, err = svc.OrdersFor(context.Background(), auth.Identity{UserID: 1, Role: auth.RoleAdmin})
	assert.ErrorIs(t, err, client.ErrSourceUnavailable)
}

func TestNormalizeOrderPreservesFieldsAndLineOrder(t *testing.T) {
	shipped := datePtr(t, "2024-01-20T10:30:00Z")
	tracking := "TRK123456789"
	src := &client.ERPOrder{
		OrderNumber:  "ORD-2024-001",
		UserEmail:    "user@wholesale.com",
		Status:       "partial",
		ShipmentDate: shipped,
		CreatedAt:    *datePtr(t, "2024-01-15T10:30:00Z"),
		OrderLines: []client.ERPOrderLine{
			{SKU: "SKU001", Quantity: 24, TrackingNumber: &tracking, ShippedAt: shipped},
			{SKU: "SKU004", Quantity: 50},
		},
	}

	order := normalizeOrder(src)

	assert.Equal(t, src.OrderNumber, order.OrderNumber)
	assert.Equal(t, src.UserEmail, order.UserEmail)
	assert.Equal(t, src.Status, order.Status)
	assert.Equal(t, src.ShipmentDate, order.ShipmentDate)
	assert.Equal(t, src.CreatedAt, order.CreatedAt)

	require.Len(t, order.OrderLines, len(src.OrderLines))
	for i, line := range order.OrderLines {
		assert.Equal(t, src.OrderLines[i].SKU, line.SKU)
		assert.Equal(t, src.OrderLines[i].Quantity, line.Quantity)
		assert.Equal(t, src.OrderLines[i].TrackingNumber, line.TrackingNumber)
		assert.Equal(t, src.OrderLines[i].ShippedAt, line.ShippedAt)
	}
}
