package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config carries everything the application needs from the environment.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// AdminChatIDs is the chat id list notified about every new order.
	AdminChatIDs []int64 `env:"ADMIN_CHAT_IDS"`

	// StaleOrderMaxAge is how long an order may sit in Placed status
	// before the stale order job starts reminding the admins.
	StaleOrderMaxAge time.Duration `env:"STALE_ORDER_MAX_AGE" envDefault:"30m"`
}

// LoadConfig reads .env if present and parses the environment into a
// Config. Missing required variables fail here, before anything starts.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// DSN renders the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
