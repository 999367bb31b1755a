package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string

	// shared secret for the /internal routes and the notifier call
	InternalAPISecret string

	// where placeOrder posts preference updates; defaults to this
	// process so the single-binary deployment works out of the box
	RecommendationServiceURL string

	// how often the status updater sweeps orders
	StatusSweepInterval time.Duration

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port := getEnv("PORT", "8000")
	return &Config{
		DBSource:                 getEnv("DB_SOURCE", "foodexpress.db"),
		Port:                     port,
		JWTSecret:                getEnv("JWT_SECRET", "changeme"),
		JWTTTL:                   24 * time.Hour,
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:            os.Getenv("REDIS_PASSWORD"),
		InternalAPISecret:        getEnv("INTERNAL_API_SECRET", "internal-dev-secret"),
		RecommendationServiceURL: getEnv("RECOMMENDATION_SERVICE_URL", "http://localhost:"+port),
		StatusSweepInterval:      time.Duration(getEnvInt("STATUS_SWEEP_INTERVAL", 60)) * time.Second,
		AdminEmail:               os.Getenv("ADMIN_EMAIL"),
		AdminPassword:            os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
