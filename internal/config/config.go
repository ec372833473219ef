package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	MySQLDSN   string
	RedisAddr  string
	ShopName   string
	Currency   string
	CORSOrigin string
	Debug      bool
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/pizzapos?parseTime=true"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		ShopName:   getEnv("SHOP_NAME", "Pizza Shop"),
		Currency:   getEnv("CURRENCY", "LKR"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		Debug:      getEnv("DEBUG", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
