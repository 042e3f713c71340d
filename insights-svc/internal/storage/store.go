package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tatini-menu/insights-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	DateLayout = "2006-01-02"

	dailyRetention = 7 * 24 * time.Hour
	dishNamesKey   = "insights:dish-names"
)

// Store keeps per-day counters in Redis. Daily keys expire a week after
// their last write.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func DishesKey(date string) string {
	return "insights:daily:" + date + ":dishes"
}

func ChannelsKey(date string) string {
	return "insights:daily:" + date + ":channels"
}

// RecordOrder counts event on the UTC day of its timestamp.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	date := event.Timestamp.UTC().Format(DateLayout)
	dishesKey := DishesKey(date)
	channelsKey := ChannelsKey(date)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			if item.DishID == "" || item.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, dishesKey, float64(item.Quantity), item.DishID)
			if item.Name != "" {
				pipe.HSet(ctx, dishNamesKey, item.DishID, item.Name)
			}
		}
		pipe.HIncrBy(ctx, channelsKey, event.Type, 1)
		pipe.Expire(ctx, dishesKey, dailyRetention)
		pipe.Expire(ctx, channelsKey, dailyRetention)
		return nil
	})
	return err
}

// TopDishes returns up to limit lines for date, most ordered first.
func (s *Store) TopDishes(ctx context.Context, date string, limit int) ([]domain.DishPopularity, error) {
	results, err := s.rdb.ZRevRangeWithScores(ctx, DishesKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []domain.DishPopularity{}, nil
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Member.(string))
	}
	names, err := s.rdb.HMGet(ctx, dishNamesKey, ids...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	top := make([]domain.DishPopularity, 0, len(results))
	for i, r := range results {
		name, _ := names[i].(string)
		top = append(top, domain.DishPopularity{
			DishID:   ids[i],
			Name:     name,
			Quantity: int(r.Score),
		})
	}
	return top, nil
}

func (s *Store) Channels(ctx context.Context, date string) (map[string]int, error) {
	raw, err := s.rdb.HGetAll(ctx, ChannelsKey(date)).Result()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{
		domain.EventOrderWhatsApp: 0,
		domain.EventOrderWaiter:   0,
	}
	for field, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		counts[field] = n
	}
	return counts, nil
}
