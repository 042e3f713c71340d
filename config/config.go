package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	DefaultWhatsAppPhone = "917420096566"
	DefaultReviewURL     = "https://search.google.com/local/writereview?placeid=0x3bc2b9611badad51:0x360a8a00def068e6"
	DefaultTableCount    = 15
	DefaultOrdersTopic   = "tatini-orders"
)

// Settings holds the non-connection knobs of a service. Connection
// parameters stay in the environment and are read by the MustInit helpers.
type Settings struct {
	Port              string
	WhatsAppPhone     string
	ReviewURL         string
	PublicBaseURL     string
	TableCount        int
	SplashDelay       time.Duration
	ReviewPromptDelay time.Duration
	ReviewSessionTTL  time.Duration
	SessionIdleTTL    time.Duration
	OrdersTopic       string
	AllowedOrigins    []string
}

// LoadEnv reads a .env file when one is present. A missing file is not an
// error: production containers get their environment from the orchestrator.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env file")
	}
}

func LoadSettings(defaultPort string) Settings {
	return Settings{
		Port:              getString("PORT", defaultPort),
		WhatsAppPhone:     getString("WHATSAPP_PHONE", DefaultWhatsAppPhone),
		ReviewURL:         getString("GOOGLE_REVIEW_URL", DefaultReviewURL),
		PublicBaseURL:     getString("PUBLIC_BASE_URL", "http://localhost:3000"),
		TableCount:        getInt("TABLE_COUNT", DefaultTableCount),
		SplashDelay:       getDuration("SPLASH_DELAY", 2200*time.Millisecond),
		ReviewPromptDelay: getDuration("REVIEW_PROMPT_DELAY", 400*time.Millisecond),
		ReviewSessionTTL:  getDuration("REVIEW_SESSION_TTL", 12*time.Hour),
		SessionIdleTTL:    getDuration("SESSION_IDLE_TTL", 6*time.Hour),
		OrdersTopic:       getString("KAFKA_ORDERS_TOPIC", DefaultOrdersTopic),
		AllowedOrigins:    getList("CORS_ALLOWED_ORIGINS"),
	}
}

func PostgresConfigured() bool {
	return os.Getenv("DB_HOST") != ""
}

func KafkaConfigured() bool {
	return os.Getenv("KAFKA_BROKER") != ""
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getString("REDIS_HOST", "localhost") + ":" + getString("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		// Publishes happen inside HTTP requests; don't wait for a batch.
		BatchTimeout: 10 * time.Millisecond,
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		logrus.WithField("key", key).WithField("value", raw).Warn("invalid integer setting, using default")
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		logrus.WithField("key", key).WithField("value", raw).Warn("invalid duration setting, using default")
		return fallback
	}
	return v
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
