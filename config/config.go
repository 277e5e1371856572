package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment     string
	DataDir         string
	OwnerPassphrase string
	CatalogSeedSize int
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		DataDir:         getEnv("DATA_DIR", "data"),
		OwnerPassphrase: getEnv("OWNER_PASSPHRASE", "letmein"),
	}

	seedSize, err := strconv.Atoi(os.Getenv("CATALOG_SEED_SIZE"))
	if err != nil || seedSize <= 0 {
		seedSize = 100
	}

	conf.CatalogSeedSize = seedSize

	return &conf
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
