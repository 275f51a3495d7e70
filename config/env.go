package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. A missing file is not
// an error; deployments usually set env vars directly.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}
