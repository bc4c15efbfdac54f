package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	ServerPort string
	Env        string
	Timezone   string
}

func Load() *Config {
	// .env é opcional; variáveis do ambiente têm precedência
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("DATABASE_PATH", "barberdesk.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		Timezone:   getEnv("TIMEZONE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
