package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	tableKeyPrefix  = "tatini_table:"
	reviewKeyPrefix = "tatini_review_shown:"
)

// RedisTableStore persists the table a device sits at. Keys have no
// expiry; a selection lives until the guest changes table.
type RedisTableStore struct {
	Client     *redis.Client
	TableCount int
}

func NewRedisTableStore(client *redis.Client, tableCount int) *RedisTableStore {
	return &RedisTableStore{Client: client, TableCount: tableCount}
}

func (s *RedisTableStore) TableKey(deviceID string) string {
	return tableKeyPrefix + deviceID
}

// GetTable reports the persisted table. Missing, corrupt and out of range
// values all read as absent.
func (s *RedisTableStore) GetTable(ctx context.Context, deviceID string) (int, bool, error) {
	raw, err := s.Client.Get(ctx, s.TableKey(deviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	table, err := strconv.Atoi(raw)
	if err != nil || table < 1 || table > s.TableCount {
		logrus.WithFields(logrus.Fields{
			"device": deviceID,
			"value":  raw,
		}).Warn("ignoring unusable persisted table")
		return 0, false, nil
	}
	return table, true, nil
}

func (s *RedisTableStore) SetTable(ctx context.Context, deviceID string, table int) error {
	return s.Client.Set(ctx, s.TableKey(deviceID), strconv.Itoa(table), 0).Err()
}

func (s *RedisTableStore) ClearTable(ctx context.Context, deviceID string) error {
	return s.Client.Del(ctx, s.TableKey(deviceID)).Err()
}

// RedisReviewGate remembers, per browser session, that the review prompt
// was already shown.
type RedisReviewGate struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisReviewGate(client *redis.Client, ttl time.Duration) *RedisReviewGate {
	return &RedisReviewGate{Client: client, TTL: ttl}
}

func (g *RedisReviewGate) MarkerKey(sessionID string) string {
	return reviewKeyPrefix + sessionID
}

// TryMark sets the session's marker and reports whether this call set it.
// Only the first caller in a session gets true.
func (g *RedisReviewGate) TryMark(ctx context.Context, sessionID string) (bool, error) {
	return g.Client.SetNX(ctx, g.MarkerKey(sessionID), "true", g.TTL).Result()
}
