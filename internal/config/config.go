// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"
)

type Config struct {
	Port                string
	Environment         string
	DatabaseURL         string
	JWTSecret           string
	JWTExpiresInSeconds int64
	AMQPURL             string
}

func Load() *Config {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "adcamp")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	expiresIn, err := strconv.ParseInt(getEnv("JWT_EXPIRES_IN_SECONDS", "86400"), 10, 64)
	if err != nil || expiresIn <= 0 {
		expiresIn = 86400
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		DatabaseURL:         databaseURL,
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiresInSeconds: expiresIn,
		AMQPURL:             os.Getenv("AMQP_URL"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
