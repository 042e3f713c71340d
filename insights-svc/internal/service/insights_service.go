package service

import (
	"context"
	"errors"
	"time"

	"tatini-menu/insights-svc/internal/domain"
	"tatini-menu/insights-svc/internal/storage"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type InsightsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewInsightsService(store StoreInterface) *InsightsService {
	return &InsightsService{store: store, now: time.Now}
}

// TopDishes lists the most ordered lines of date, today (UTC) when empty.
// limit outside 1..MaxLimit falls back to DefaultLimit.
func (s *InsightsService) TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return s.store.TopDishes(ctx, day, limit)
}

func (s *InsightsService) Channels(ctx context.Context, date string) (domain.ChannelCounts, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return domain.ChannelCounts{}, err
	}
	counts, err := s.store.Channels(ctx, day)
	if err != nil {
		return domain.ChannelCounts{}, err
	}
	return domain.ChannelCounts{Date: day, Channels: counts}, nil
}

func (s *InsightsService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.now().UTC().Format(storage.DateLayout), nil
	}
	t, err := time.Parse(storage.DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(storage.DateLayout), nil
}
