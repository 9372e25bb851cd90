package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	LicenseDBHost     string
	LicenseDBPort     string
	LicenseDBUser     string
	LicenseDBPassword string
	LicenseDBName     string

	APIKey    string
	JWTSecret string

	StripeSecretKey     string
	StripeWebhookSecret string
	FrontendURL         string

	QRCodeDir    string
	FCMServerKey string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "roadfine"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 3500))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "roadfine"))

	cfg.LicenseDBHost = cast.ToString(getOrReturnDefault("LICENSE_DB_HOST", "localhost"))
	cfg.LicenseDBPort = cast.ToString(getOrReturnDefault("LICENSE_DB_PORT", "5432"))
	cfg.LicenseDBUser = cast.ToString(getOrReturnDefault("LICENSE_DB_USER", "postgres"))
	cfg.LicenseDBPassword = cast.ToString(getOrReturnDefault("LICENSE_DB_PASSWORD", "1234"))
	cfg.LicenseDBName = cast.ToString(getOrReturnDefault("LICENSE_DB_NAME", "license_registry"))

	cfg.APIKey = cast.ToString(getOrReturnDefault("API_KEY", ""))
	cfg.JWTSecret = cast.ToString(getOrReturnDefault("JWT_SECRET", ""))

	cfg.StripeSecretKey = cast.ToString(getOrReturnDefault("STRIPE_SECRET_KEY", ""))
	cfg.StripeWebhookSecret = cast.ToString(getOrReturnDefault("STRIPE_WEBHOOK_SECRET", ""))
	cfg.FrontendURL = cast.ToString(getOrReturnDefault("FRONTEND_URL", "http://localhost:3000"))

	cfg.QRCodeDir = cast.ToString(getOrReturnDefault("QR_CODE_DIR", "qr_codes"))
	cfg.FCMServerKey = cast.ToString(getOrReturnDefault("FCM_SERVER_KEY", ""))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
