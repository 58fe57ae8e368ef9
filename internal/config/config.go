package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	JWTExpiry  time.Duration
	BackendURL string
	Env        string
}

func Load() *Config {
	_ = godotenv.Load()
	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "24h"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	c := &Config{
		Port:       getEnv("PORT", "3000"),
		MongoURI:   mustEnv("MONGODB_URI"),
		MongoDB:    getEnv("MONGO_DB", "ordergate"),
		JWTSecret:  mustEnv("JWT_SECRET"),
		JWTExpiry:  expiry,
		BackendURL: getEnv("BASE_URL", "http://localhost:8000"),
		Env:        getEnv("ENV", "dev"),
	}
	log.Printf("config loaded: env=%s port=%s backend=%s", c.Env, c.Port, c.BackendURL)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
