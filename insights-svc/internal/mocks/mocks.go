package mocks

import (
	"context"

	"tatini-menu/insights-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *StoreInterface) TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, date, limit)

	var r0 []domain.DishPopularity
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) Channels(ctx context.Context, date string) (map[string]int, error) {
	ret := _m.Called(ctx, date)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}
	return r0, ret.Error(1)
}

func NewStoreInterface(t TestingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MessageReader is a mock type for the MessageReader type
type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)

	var r0 kafka.Message
	if v := ret.Get(0); v != nil {
		r0 = v.(kafka.Message)
	}
	return r0, ret.Error(1)
}

func NewMessageReader(t TestingT) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// InsightsInterface is a mock type for the InsightsInterface type
type InsightsInterface struct {
	mock.Mock
}

func (_m *InsightsInterface) TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, date, limit)

	var r0 []domain.DishPopularity
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}

func (_m *InsightsInterface) Channels(ctx context.Context, date string) (domain.ChannelCounts, error) {
	ret := _m.Called(ctx, date)

	var r0 domain.ChannelCounts
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.ChannelCounts)
	}
	return r0, ret.Error(1)
}

func NewInsightsInterface(t TestingT) *InsightsInterface {
	m := &InsightsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
