package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// JWTSigningKeySecret is the name of the secret holding the signing key;
	// the value itself is resolved through the configured secrets provider.
	JWTSigningKeySecret string
	JWTIssuer           string
	JWTTTLMinutes       int

	SecretsSource string // "env" or "file"
	SecretsDir    string

	MinPasswordLength int
	BcryptCost        int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSigningKeySecret: getEnv("JWT_SIGNING_KEY_SECRET", "JWT_SIGNING_KEY"),
		JWTIssuer:           getEnv("JWT_ISSUER", "auth-service"),
		JWTTTLMinutes:       getEnvInt("JWT_TTL_MINUTES", 60),
		SecretsSource:       getEnv("SECRETS_SOURCE", "env"),
		SecretsDir:          os.Getenv("SECRETS_DIR"),
		MinPasswordLength:   getEnvInt("MIN_PASSWORD_LENGTH", 8),
		BcryptCost:          getEnvInt("BCRYPT_COST", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
