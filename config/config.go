package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from the environment, loading .env once if present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
