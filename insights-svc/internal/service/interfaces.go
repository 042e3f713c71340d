package service

import (
	"context"

	"tatini-menu/insights-svc/internal/domain"
	"tatini-menu/insights-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
	TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error)
	Channels(ctx context.Context, date string) (map[string]int, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type InsightsInterface interface {
	TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error)
	Channels(ctx context.Context, date string) (domain.ChannelCounts, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ InsightsInterface = (*InsightsService)(nil)
)
