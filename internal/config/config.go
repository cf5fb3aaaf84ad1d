package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"listinglab/internal/crawler"
)

type Config struct {
	HTTPAddr       string        `yaml:"http_addr"`
	MetricsPort    string        `yaml:"metrics_port"`
	DatabaseURL    string        `yaml:"database_url"`
	RedisURL       string        `yaml:"redis_url"`
	OpenAIKey      string        `yaml:"-"`
	OpenAIModel    string        `yaml:"openai_model"`
	SearchURL      string        `yaml:"search_url"`
	UserAgent      string        `yaml:"user_agent"`
	MaxPages       int           `yaml:"max_pages"`
	DefaultPages   int           `yaml:"default_pages"`
	DatasetTTL     time.Duration `yaml:"dataset_ttl"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

func Defaults() Config {
	return Config{
		HTTPAddr:       ":8080",
		MetricsPort:    "9090",
		OpenAIModel:    "gpt-4o-mini",
		SearchURL:      "https://www.flipkart.com/search?q=%s&page=%d",
		UserAgent:      "Mozilla/5.0",
		MaxPages:       50,
		DefaultPages:   5,
		DatasetTTL:     30 * time.Minute,
		MaxUploadBytes: 32 << 20,
	}
}

// Load junta, nesta ordem de prioridade: variáveis de ambiente, arquivo YAML
// opcional (CONFIG_FILE, padrão configs/app.yaml) e os valores padrão.
func Load() (*Config, error) {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()

	cfg, err := fromFile(getEnv("CONFIG_FILE", "configs/app.yaml"))
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func fromFile(path string) (*Config, error) {
	cfg := &Config{}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("failed to merge config defaults: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.MetricsPort = getEnv("METRICS_PORT", cfg.MetricsPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.SearchURL = getEnv("SEARCH_URL", cfg.SearchURL)
	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	cfg.MaxPages = getEnvInt("MAX_PAGES", cfg.MaxPages)
	cfg.DefaultPages = getEnvInt("DEFAULT_PAGES", cfg.DefaultPages)

	// o seletor de páginas nunca passa de 1..crawler.MaxPages
	if cfg.MaxPages < 1 || cfg.MaxPages > crawler.MaxPages {
		cfg.MaxPages = crawler.MaxPages
	}
	if cfg.DefaultPages < 1 || cfg.DefaultPages > cfg.MaxPages {
		cfg.DefaultPages = min(crawler.DefaultPages, cfg.MaxPages)
	}

	if v := os.Getenv("DATASET_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DatasetTTL = d
		}
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
