package mocks

import (
	"context"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuServiceInterface is a mock type for the MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) Dish(id string) (domain.Dish, bool) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Dish), ret.Bool(1)
}

func (_m *MenuServiceInterface) Categories() []domain.Category {
	ret := _m.Called()

	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}
	return r0
}

func (_m *MenuServiceInterface) Venue() domain.Venue {
	ret := _m.Called()
	return ret.Get(0).(domain.Venue)
}

func (_m *MenuServiceInterface) TableCount() int {
	ret := _m.Called()
	return ret.Int(0)
}

func (_m *MenuServiceInterface) TableQRCode(table int) ([]byte, error) {
	ret := _m.Called(table)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) ReviewLink() string {
	ret := _m.Called()
	return ret.String(0)
}

func NewMenuServiceInterface(t TestingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderingServiceInterface is a mock type for the OrderingServiceInterface type
type OrderingServiceInterface struct {
	mock.Mock
}

func (_m *OrderingServiceInterface) View(ctx context.Context, id domain.Identity) domain.SessionView {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.SessionView)
}

func (_m *OrderingServiceInterface) SelectTable(ctx context.Context, id domain.Identity, table int) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id, table))
}

func (_m *OrderingServiceInterface) ClearTable(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id))
}

func (_m *OrderingServiceInterface) AddItem(ctx context.Context, id domain.Identity, dishID, addonID string) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id, dishID, addonID))
}

func (_m *OrderingServiceInterface) ChangeQuantity(ctx context.Context, id domain.Identity, lineID string, delta int) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id, lineID, delta))
}

func (_m *OrderingServiceInterface) SetLineNote(ctx context.Context, id domain.Identity, lineID, note string) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id, lineID, note))
}

func (_m *OrderingServiceInterface) SetOrderNote(ctx context.Context, id domain.Identity, note string) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id, note))
}

func (_m *OrderingServiceInterface) OpenCart(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id))
}

func (_m *OrderingServiceInterface) CloseCart(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id))
}

func (_m *OrderingServiceInterface) ShowToWaiter(ctx context.Context, id domain.Identity) (domain.WaiterConfirmation, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.WaiterConfirmation
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.WaiterConfirmation)
	}
	return r0, ret.Error(1)
}

func (_m *OrderingServiceInterface) DismissReview(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	return viewResult(_m.Called(ctx, id))
}

func (_m *OrderingServiceInterface) WhatsAppLink(ctx context.Context, id domain.Identity) (domain.OutboundLink, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.OutboundLink
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.OutboundLink)
	}
	return r0, ret.Error(1)
}

func NewOrderingServiceInterface(t TestingT) *OrderingServiceInterface {
	m := &OrderingServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func viewResult(ret mock.Arguments) (domain.SessionView, error) {
	var r0 domain.SessionView
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.SessionView)
	}
	return r0, ret.Error(1)
}
