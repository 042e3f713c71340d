package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "WHATSAPP_PHONE", "GOOGLE_REVIEW_URL", "TABLE_COUNT", "SPLASH_DELAY", "REVIEW_PROMPT_DELAY", "KAFKA_ORDERS_TOPIC"} {
		t.Setenv(key, "")
	}

	s := LoadSettings("8081")

	assert.Equal(t, "8081", s.Port)
	assert.Equal(t, DefaultWhatsAppPhone, s.WhatsAppPhone)
	assert.Equal(t, DefaultReviewURL, s.ReviewURL)
	assert.Equal(t, 15, s.TableCount)
	assert.Equal(t, 2200*time.Millisecond, s.SplashDelay)
	assert.Equal(t, 400*time.Millisecond, s.ReviewPromptDelay)
	assert.Equal(t, DefaultOrdersTopic, s.OrdersTopic)
}

func TestLoadSettings_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s Settings)
	}{
		{
			name:  "port",
			key:   "PORT",
			value: "9000",
			check: func(t *testing.T, s Settings) { assert.Equal(t, "9000", s.Port) },
		},
		{
			name:  "table count",
			key:   "TABLE_COUNT",
			value: "20",
			check: func(t *testing.T, s Settings) { assert.Equal(t, 20, s.TableCount) },
		},
		{
			name:  "invalid table count falls back",
			key:   "TABLE_COUNT",
			value: "lots",
			check: func(t *testing.T, s Settings) { assert.Equal(t, DefaultTableCount, s.TableCount) },
		},
		{
			name:  "splash delay",
			key:   "SPLASH_DELAY",
			value: "1s",
			check: func(t *testing.T, s Settings) { assert.Equal(t, time.Second, s.SplashDelay) },
		},
		{
			name:  "invalid duration falls back",
			key:   "REVIEW_SESSION_TTL",
			value: "tomorrow",
			check: func(t *testing.T, s Settings) { assert.Equal(t, 12*time.Hour, s.ReviewSessionTTL) },
		},
		{
			name:  "allowed origins",
			key:   "CORS_ALLOWED_ORIGINS",
			value: "https://menu.tatini.in, http://localhost:3000,",
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, []string{"https://menu.tatini.in", "http://localhost:3000"}, s.AllowedOrigins)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)
			testCase.check(t, LoadSettings("8081"))
		})
	}
}
