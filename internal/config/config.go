package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env         string `yaml:"env" env:"PAYROLL_ENV" env-default:"prod"`
	StoragePath string `yaml:"storage_path" env:"PAYROLL_STORAGE_PATH" env-default:"./data/payroll.db"`
	StaticDir   string `yaml:"static_dir" env-default:"./frontend-dist"` // сборка UI; если папки нет, отдаётся только API
	HTTPServer  `yaml:"http_server"`
	Export      `yaml:"export"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env-default:"localhost:4001"`
	Timeout        time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"  env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env-default:"http://localhost:5173"`
}

type Export struct {
	// Префикс имени файла отчёта и шаблона
	FilePrefix string `yaml:"file_prefix" env-default:"AutoGrand"`
}

// Load читает конфиг из path, переменные окружения перекрывают yaml.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: config file %s: %w", op, path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
