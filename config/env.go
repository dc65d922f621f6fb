package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv               string
	Port                 string
	StripeSecretKey      string
	StripePublishableKey string
	PayPalClientID       string
	PayPalSecret         string
	PayPalEnv            string
	SuccessURL           string
	CancelURL            string
	Currency             string
	AllowedCountries     []string
	AggregationPolicy    string
	RedisURL             string
	RedisAddr            string
	RedisPassword        string
	CartKeyPrefix        string
	StaticDir            string
	OriginURL            string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		Port:                 getEnv("APP_PORT", getEnv("PORT", "4242")),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		PayPalClientID:       os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalSecret:         os.Getenv("PAYPAL_SECRET"),
		PayPalEnv:            getEnv("PAYPAL_ENV", "sandbox"),
		SuccessURL:           getEnv("SUCCESS_URL", "http://localhost:4242/public/success.html"),
		CancelURL:            getEnv("CANCEL_URL", "http://localhost:4242/public/cancel.html"),
		Currency:             getEnv("CURRENCY", "usd"),
		AllowedCountries:     splitList(getEnv("ALLOWED_COUNTRIES", "US,CA")),
		AggregationPolicy:    getEnv("AGGREGATION_POLICY", "first"),
		RedisURL:             os.Getenv("REDIS_URL"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		CartKeyPrefix:        getEnv("CART_KEY_PREFIX", "cart:"),
		StaticDir:            getEnv("STATIC_DIR", "./public"),
		OriginURL:            os.Getenv("ORIGIN_URL"),
	}

	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set, checkout sessions will fail")
	}
	if AppConfig.PayPalClientID == "" || AppConfig.PayPalSecret == "" {
		log.Println("Warning: PayPal credentials are not set, payment capture will fail")
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
