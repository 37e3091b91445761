package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRateLimitBurst     = 20
	defaultRateLimitPerMinute = 60
	defaultRateLimitKeyPrefix = "ledger:ratelimit:"
)

type Config struct {
	RunAddress         string `env:"RUN_ADDRESS"`
	DatabaseDSN        string `env:"DATABASE_URI"`
	MigrationsDir      string `env:"MIGRATIONS_DIR"`
	JWTSecret          string `env:"JWT_SECRET"`
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE"`
	RateLimitKeyPrefix string `env:"RATE_LIMIT_KEY_PREFIX"`
}

// String скрывает секреты при логировании конфига.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s RedisAddr:%s RateLimitBurst:%d RateLimitPerMinute:%d RateLimitKeyPrefix:%s}",
		c.RunAddress, c.MigrationsDir, c.RedisAddr, c.RateLimitBurst, c.RateLimitPerMinute, c.RateLimitKeyPrefix,
	)
}

// LoadConfig собирает конфиг из переменных окружения и флагов. Переменные окружения приоритетнее. Если рядом
// лежит файл .env, его значения подгружаются в окружение (уже выставленные переменные не перезаписываются).
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret is not set")
	}
	if c.RateLimitBurst < 1 || c.RateLimitPerMinute < 1 {
		return errors.New("rate limit values must be positive")
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, statErr := os.Stat(path); statErr != nil {
		return nil //nolint:nilerr
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %s", path, err.Error())
	}
	return nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for rate limiting, empty - disabled")
	flag.IntVar(&flagConfig.RateLimitBurst, "rate-burst", defaultRateLimitBurst, "Rate limit burst")
	flag.IntVar(&flagConfig.RateLimitPerMinute, "rate-per-minute", defaultRateLimitPerMinute,
		"Rate limit requests per minute")
	flag.StringVar(&flagConfig.RateLimitKeyPrefix, "rate-prefix", defaultRateLimitKeyPrefix,
		"Redis key prefix for rate limit buckets")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:          defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		RedisAddr:          defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword:      envConfig.RedisPassword,
		RateLimitBurst:     defaultIfZero(envConfig.RateLimitBurst, flagsConfig.RateLimitBurst),
		RateLimitPerMinute: defaultIfZero(envConfig.RateLimitPerMinute, flagsConfig.RateLimitPerMinute),
		RateLimitKeyPrefix: defaultIfBlank(envConfig.RateLimitKeyPrefix, flagsConfig.RateLimitKeyPrefix),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value int, defaultValue int) int {
	if value == 0 {
		return defaultValue
	}
	return value
}
