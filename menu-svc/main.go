package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tatini-menu/config"
	httpapi "tatini-menu/menu-svc/internal/api/http"
	"tatini-menu/menu-svc/internal/domain"
	"tatini-menu/menu-svc/internal/service"
	"tatini-menu/menu-svc/internal/session"
	"tatini-menu/menu-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 10 * time.Minute
)

func main() {
	config.LoadEnv()
	settings := config.LoadSettings("8081")
	log := logrus.WithField("service", "menu-svc")

	// Prices go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo service.CatalogRepository
	if config.PostgresConfigured() {
		db := config.MustInitPostgres()
		defer db.Close()

		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("failed to ensure schema")
		}
		repo = pg
	}
	categories, err := service.LoadCatalog(ctx, repo)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	var publisher service.OrderPublisher
	if config.KafkaConfigured() {
		writer := config.NewKafkaWriter(settings.OrdersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.WithField("topic", settings.OrdersTopic).Info("publishing order events")
	} else {
		log.Warn("KAFKA_BROKER not set, order events disabled")
	}

	menu := service.NewMenuService(
		categories,
		domain.DefaultVenue(),
		settings.TableCount,
		service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL},
		settings.ReviewURL,
	)
	ordering := service.NewOrderingService(
		menu,
		storage.NewRedisTableStore(rdb, settings.TableCount),
		storage.NewRedisReviewGate(rdb, settings.ReviewSessionTTL),
		publisher,
		service.OrderingConfig{
			TableCount:    settings.TableCount,
			WhatsAppPhone: settings.WhatsAppPhone,
			Session: session.Options{
				SplashDelay:       settings.SplashDelay,
				ReviewPromptDelay: settings.ReviewPromptDelay,
			},
		},
	)
	defer ordering.Close()
	go ordering.RunSweeper(ctx, sweepInterval, settings.SessionIdleTTL)

	handler := httpapi.NewHandler(menu, ordering)
	router := httpapi.NewRouter(handler, settings.AllowedOrigins...)

	if err := httpapi.StartServer(ctx, ":"+settings.Port, router, shutdownTimeout); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("shut down")
}
