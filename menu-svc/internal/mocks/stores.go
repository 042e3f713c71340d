package mocks

import (
	"context"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// TableStore is a mock type for the TableStore type
type TableStore struct {
	mock.Mock
}

func (_m *TableStore) GetTable(ctx context.Context, deviceID string) (int, bool, error) {
	ret := _m.Called(ctx, deviceID)

	if fn, ok := ret.Get(0).(func(context.Context, string) (int, bool, error)); ok {
		return fn(ctx, deviceID)
	}
	return ret.Int(0), ret.Bool(1), ret.Error(2)
}

func (_m *TableStore) SetTable(ctx context.Context, deviceID string, table int) error {
	ret := _m.Called(ctx, deviceID, table)
	return ret.Error(0)
}

func (_m *TableStore) ClearTable(ctx context.Context, deviceID string) error {
	ret := _m.Called(ctx, deviceID)
	return ret.Error(0)
}

func NewTableStore(t TestingT) *TableStore {
	m := &TableStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ReviewGate is a mock type for the ReviewGate type
type ReviewGate struct {
	mock.Mock
}

func (_m *ReviewGate) TryMark(ctx context.Context, sessionID string) (bool, error) {
	ret := _m.Called(ctx, sessionID)
	return ret.Bool(0), ret.Error(1)
}

func NewReviewGate(t TestingT) *ReviewGate {
	m := &ReviewGate{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderPublisher is a mock type for the OrderPublisher type
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewOrderPublisher(t TestingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) LoadCatalog(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}
	return r0, ret.Error(1)
}

func NewCatalogRepository(t TestingT) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
