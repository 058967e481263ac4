package routes

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SessionStoreDynamoDB = "dynamodb"
	SessionStoreMemory   = "memory"
)

// Config is read once at startup. Every value has a local-friendly default.
type Config struct {
	Port                   string
	BackendBaseURL         string
	BackendTimeout         time.Duration
	SessionStore           string
	SessionsTable          string
	SessionTTL             time.Duration
	MercadoPagoAccessToken string
	SpendApprovedOnly      bool
}

func LoadConfig() Config {
	return Config{
		Port:                   getenvDefault("PORT", "8080"),
		BackendBaseURL:         getenvDefault("BACKEND_BASE_URL", "http://localhost:3000"),
		BackendTimeout:         getenvDuration("BACKEND_TIMEOUT", 15*time.Second),
		SessionStore:           strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreDynamoDB)),
		SessionsTable:          getenvDefault("SESSIONS_TABLE", "sessions"),
		SessionTTL:             getenvDuration("SESSION_TTL", 24*time.Hour),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		SpendApprovedOnly:      getenvBool("SPEND_APPROVED_ONLY", false),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return b
}
