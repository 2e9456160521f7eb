package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Bot      BotConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
}

type DatabaseConfig struct {
	Connection string
}

type BotConfig struct {
	// Secret shared out-of-band with shop employees; typing it once
	// enrolls the telegram user permanently.
	EnrollSecret string
	LeadTimeDays int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "8080"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "bot.log"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Bot: BotConfig{
			EnrollSecret: getEnv("BOT_SECRET", ""),
			LeadTimeDays: getEnvAsInt("LEAD_TIME_DAYS", 7),
		},
	}
}

// Validate reports the fatal startup misconfigurations. The bot refuses
// to boot without a database and an enrollment secret.
func (c *Config) Validate() error {
	if c.Database.Connection == "" {
		return ErrMissingDatabase
	}
	if c.Bot.EnrollSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
