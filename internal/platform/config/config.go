package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/srgjo27/tutor_booking/internal/core/slots"
)

type Config struct {
	App     App
	Backend Backend
	Redis   Redis
	Logger  Logger
	Booking Booking
}

type App struct {
	Env             string
	Port            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	RequestsPerMin  int
	SessionTTL      time.Duration
}

type Backend struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
	DraftTTL time.Duration
	TutorTTL time.Duration
}

type Logger struct {
	Level string
}

type Booking struct {
	GranularityMinutes int
}

// Load reads the environment, after applying any .env file found in the
// working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg := &Config{
		App: App{
			Env:             GetEnvString("APP_ENV", "development"),
			Port:            GetEnvString("APP_PORT", "8080"),
			ShutdownTimeout: GetEnvDuration("APP_SHUTDOWN_TIMEOUT", 5*time.Second),
			AllowedOrigins:  GetEnvList("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RequestsPerMin:  GetEnvInt("APP_REQUESTS_PER_MINUTE", 120),
			SessionTTL:      GetEnvDuration("APP_SESSION_TTL", 5*time.Minute),
		},
		Backend: Backend{
			BaseURL:           GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
			Timeout:           GetEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
			RequestsPerSecond: GetEnvFloat("BACKEND_REQUESTS_PER_SECOND", 20),
		},
		Redis: Redis{
			Host:     GetEnvString("REDIS_HOST", "localhost"),
			Port:     GetEnvString("REDIS_PORT", "6379"),
			Password: GetEnvString("REDIS_PASSWORD", ""),
			DB:       GetEnvInt("REDIS_DB", 0),
			DraftTTL: GetEnvDuration("REDIS_DRAFT_TTL", 30*time.Minute),
			TutorTTL: GetEnvDuration("REDIS_TUTOR_TTL", time.Minute),
		},
		Logger: Logger{
			Level: GetEnvString("LOGGER_LEVEL", "info"),
		},
		Booking: Booking{
			GranularityMinutes: GetEnvInt("BOOKING_GRANULARITY_MINUTES", slots.DefaultGranularityMinutes),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("BACKEND_BASE_URL must be an http(s) URL")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.Booking.GranularityMinutes <= 0 || c.Booking.GranularityMinutes > slots.MinSessionMinutes {
		return fmt.Errorf("BOOKING_GRANULARITY_MINUTES must be between 1 and %d", slots.MinSessionMinutes)
	}
	if c.Redis.DraftTTL <= 0 {
		return fmt.Errorf("REDIS_DRAFT_TTL must be positive")
	}
	if c.App.RequestsPerMin <= 0 {
		return fmt.Errorf("APP_REQUESTS_PER_MINUTE must be positive")
	}
	return nil
}

func GetEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return fallback
		}
		return i
	}
	return fallback
}

func GetEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return fallback
		}
		return f
	}
	return fallback
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return fallback
		}
		return d
	}
	return fallback
}

func GetEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
