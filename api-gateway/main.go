package main

import (
	"net/http"
	"os"
	"time"

	"tatini-menu/api-gateway/internal/gateway"
	"tatini-menu/config"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	settings := config.LoadSettings("8080")

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:     getEnv("MENU_SVC_URL", "http://localhost:8081"),
		InsightsSvcURL: getEnv("INSIGHTS_SVC_URL", "http://localhost:8083"),
		FrontendDir:    getEnv("FRONTEND_DIR", "./frontend"),
	}, &http.Client{Timeout: 15 * time.Second})

	logrus.WithField("service", "api-gateway").Infof("API Gateway starting on port %s", settings.Port)
	if err := http.ListenAndServe(":"+settings.Port, gw.SetupRoutes()); err != nil {
		logrus.WithError(err).Fatal("gateway stopped")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
