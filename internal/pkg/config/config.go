package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`

	Login LoginConfig
	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// LoginConfig bounds consecutive failed login attempts per identifier.
type LoginConfig struct {
	MaxFailures   int64 `env:"LOGIN_MAX_FAILURES,   default=5"`
	WindowMinutes int   `env:"LOGIN_WINDOW_MINUTES, default=15"`
}

// AdminConfig seeds the default admin account on first startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME,  default=admin"`
	Email    string `env:"ADMIN_EMAIL,     default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD,  default=admin"`
	FullName string `env:"ADMIN_FULL_NAME, default=Admin"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
