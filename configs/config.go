package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	StoreAPIBase     string
	CountriesAPIBase string
	UpstreamTimeout  time.Duration
	CatalogLimit     int

	RedisAddr    string
	AMQPURL      string
	AMQPExchange string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	Production bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "futbolapp.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    getDuration("JWT_TTL", 7*24*time.Hour),

		StoreAPIBase:     getEnv("STORE_API_BASE", "https://fakestoreapi.com"),
		CountriesAPIBase: getEnv("COUNTRIES_API_BASE", "https://restcountries.com/v3.1"),
		UpstreamTimeout:  getDuration("UPSTREAM_TIMEOUT", 5*time.Second),
		CatalogLimit:     20,

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "futbolapp.events"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		Production: getEnv("APP_ENV", "dev") == "production",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}
