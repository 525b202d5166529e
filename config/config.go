package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a variable from .env, falling back to the process environment.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}
	return os.Getenv(key)
}

// AppConfig holds the settings handed to the auth and checkout components at
// startup. It is built once in main and never mutated afterwards.
type AppConfig struct {
	AdminPassword          string
	JWTSecret              string
	FrontendURL            string
	MercadoPagoAccessToken string
	MercadoPagoBaseURL     string
}

// MustLoad builds the AppConfig and exits when a required secret is missing.
// There is deliberately no fallback value for the admin password or the
// signing secret.
func MustLoad() AppConfig {
	cfg := AppConfig{
		AdminPassword:          Config("ADMIN_PASSWORD"),
		JWTSecret:              Config("JWT_SECRET"),
		FrontendURL:            Config("FRONTEND_URL"),
		MercadoPagoAccessToken: Config("MERCADO_PAGO_ACCESS_TOKEN"),
		MercadoPagoBaseURL:     Config("MERCADO_PAGO_BASE_URL"),
	}

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:8080"
	}
	if cfg.MercadoPagoBaseURL == "" {
		cfg.MercadoPagoBaseURL = "https://api.mercadopago.com"
	}
	if cfg.MercadoPagoAccessToken == "" {
		log.Println("MERCADO_PAGO_ACCESS_TOKEN is not set, checkout creation will fail")
	}

	return cfg
}
