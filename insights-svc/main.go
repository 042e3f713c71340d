package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tatini-menu/config"
	httpapi "tatini-menu/insights-svc/internal/api/http"
	"tatini-menu/insights-svc/internal/service"
	"tatini-menu/insights-svc/internal/storage"

	"github.com/sirupsen/logrus"
)

const consumerGroup = "insights-svc"

func main() {
	config.LoadEnv()
	settings := config.LoadSettings("8083")
	log := logrus.WithField("service", "insights-svc")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()
	store := storage.NewStore(rdb)

	if config.KafkaConfigured() {
		reader := config.NewKafkaReader(settings.OrdersTopic, consumerGroup)
		defer reader.Close()
		go service.NewConsumer(reader, store).Start(ctx)
	} else {
		log.Warn("KAFKA_BROKER not set, serving existing counters only")
	}

	handler := httpapi.NewHandler(service.NewInsightsService(store))
	if err := httpapi.StartServer(ctx, ":"+settings.Port, httpapi.NewRouter(handler)); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
