package config // package config loads application configuration from environment variables

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable: strings for identifiers, secrets and addresses.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	MongoURI      string // MongoDB connection string
	DBName        string // database name holding the four collections
	JWTSecret     string // secret used to sign access tokens
	StripeSecret  string // payment provider secret key
	RedisAddr     string // optional host:port of Redis (empty disables caching)
	RedisPassword string // optional Redis password
	AMQPURL       string // optional RabbitMQ URL (empty disables events)
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("PORT", "5000"),
		MongoURI:      must("MONGO_URI"),
		DBName:        getenv("DB_NAME", "proLearnDb"),
		JWTSecret:     must("ACCESS_TOKEN_SECRET"),
		StripeSecret:  must("PAYMENT_SECRET_KEY"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AMQPURL:       os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
