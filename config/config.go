package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
}

func LoadConfig() Config {
	// Best effort: a missing .env just means the environment is already set
	_ = godotenv.Load()

	cfg := Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
	}

	return cfg
}

// CheckCritical logs missing database credentials without stopping the
// process; startup continues and every store call fails loudly instead.
func (c Config) CheckCritical() {
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		log.Println("CRITICAL: database credentials missing in environment")
	}
}
