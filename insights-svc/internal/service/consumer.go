package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tatini-menu/insights-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled. Undecodable messages are logged and
// skipped.
func (c *Consumer) Start(ctx context.Context) {
	log := logrus.WithField("service", "insights-svc")
	log.Info("Starting Insights Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("consumer stopped")
				return
			}
			log.WithError(err).Error("error reading message")
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.WithError(err).WithField("offset", message.Offset).Warn("skipping malformed order event")
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if !event.Known() {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	log := logrus.WithFields(logrus.Fields{
		"service": "insights-svc",
		"type":    event.Type,
		"table":   event.Table,
	})
	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.WithError(err).Error("error recording order")
		return
	}
	log.WithField("items", len(event.Items)).Debug("recorded order")
}
