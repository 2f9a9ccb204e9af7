package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Payment provider
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	// Monthly price of the base pack every subscription includes, before
	// per-module add-ons.
	BasePackPrice decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "vitall-backend")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CHECKOUT_SUCCESS_PATH", "/success?session_id={CHECKOUT_SESSION_ID}")
	viper.SetDefault("CHECKOUT_CANCEL_PATH", "/checkout")
	viper.SetDefault("BASE_PACK_PRICE", "270.00")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.StripeSecretKey = viper.GetString("STRIPE_SECRET_KEY")
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Checkout will not function.")
	}
	cfg.StripeWebhookSecret = viper.GetString("STRIPE_WEBHOOK_SECRET")
	if cfg.StripeWebhookSecret == "" {
		log.Println("Warning: STRIPE_WEBHOOK_SECRET not set. Webhook verification will fail.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.CheckoutSuccessURL = cfg.FrontendBaseURL + viper.GetString("CHECKOUT_SUCCESS_PATH")
	cfg.CheckoutCancelURL = cfg.FrontendBaseURL + viper.GetString("CHECKOUT_CANCEL_PATH")

	basePackStr := viper.GetString("BASE_PACK_PRICE")
	basePackPrice, err := decimal.NewFromString(basePackStr)
	if err != nil {
		basePackPrice = decimal.NewFromFloat(270.00)
		log.Printf("Warning: Invalid value for BASE_PACK_PRICE ('%s'). Defaulting to %s.\n", basePackStr, basePackPrice.String())
	}
	cfg.BasePackPrice = basePackPrice

	return cfg, nil
}
