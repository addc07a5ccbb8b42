package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Scoring ScoringConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
}

type ScoringConfig struct {
	// optional YAML file with extra or overriding profiles
	ProfilesFile   string
	DefaultProfile string
	Seed           int64
	SampleCount    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	seed, err := strconv.ParseInt(getEnv("SCORING_SEED", "7"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SCORING_SEED: %w", err)
	}

	sampleCount, err := strconv.Atoi(getEnv("SCORING_SAMPLE_COUNT", "400"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCORING_SAMPLE_COUNT: %w", err)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("SCORING_SAMPLE_COUNT must be positive, got %d", sampleCount)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Grade Predictor API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			CORSAllowOrigins: getCSV("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080"),
		},
		Scoring: ScoringConfig{
			ProfilesFile:   getEnv("SCORING_PROFILES_FILE", ""),
			DefaultProfile: getEnv("SCORING_DEFAULT_PROFILE", "extended"),
			Seed:           seed,
			SampleCount:    sampleCount,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getCSV(key, defaultVal string) []string {
	parts := strings.Split(getEnv(key, defaultVal), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
