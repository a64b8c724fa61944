package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"github.com/caarlos0/env/v6"
)

// Бэкенды постоянного хранилища клиента
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config содержит конфигурацию приложения
type Config struct {
	ListenAddress   string `env:"LISTEN_ADDRESS"`           // Адрес локального API
	OrderingAddress string `env:"ORDERING_SERVICE_ADDRESS"` // Базовый URL сервиса заказов

	// Хранилище клиента
	StoreBackend  string `env:"STORE_BACKEND"`
	StorePath     string `env:"STORE_PATH"`
	DatabaseURI   string `env:"DATABASE_URI"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE"`
	StoreProfile  string `env:"STORE_PROFILE"` // Пространство ключей внутри общего хранилища

	LogLevel string `env:"LOG_LEVEL"`

	RequestTimeout          time.Duration     `env:"REQUEST_TIMEOUT"`
	RegistrationPromptDelay time.Duration     `env:"REGISTRATION_PROMPT_DELAY"`
	NewOrderCartPolicy      domain.CartPolicy `env:"NEW_ORDER_CART_POLICY"`
	DispatchQueueSize       int               `env:"DISPATCH_QUEUE_SIZE"`
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию из переменных окружения и args.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := &Config{
		MongoDatabase:           "orderchat",
		LogLevel:                "info",
		RequestTimeout:          30 * time.Second,
		RegistrationPromptDelay: 500 * time.Millisecond,
		NewOrderCartPolicy:      domain.CartPolicyKeep,
		DispatchQueueSize:       8,
	}

	fs := flag.NewFlagSet("orderchat", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddress, "a", "127.0.0.1:8090", "address and port of the local API")
	fs.StringVar(&cfg.OrderingAddress, "s", "http://localhost:8000", "ordering service base URL")
	fs.StringVar(&cfg.StoreBackend, "store", StoreFile, "client store backend: memory, file, postgres, mongo")
	fs.StringVar(&cfg.StorePath, "f", "data/client_store.json", "client store file path")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.StoreProfile, "p", "default", "client store profile")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.OrderingAddress == "" {
		return fmt.Errorf("ordering service address is required (use -s flag or ORDERING_SERVICE_ADDRESS env)")
	}

	switch c.StoreBackend {
	case StoreMemory:
	case StoreFile:
		if c.StorePath == "" {
			return fmt.Errorf("store path is required for file backend (use -f flag or STORE_PATH env)")
		}
	case StorePostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database URI is required for postgres backend (use -d flag or DATABASE_URI env)")
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("mongo URI is required for mongo backend (use MONGO_URI env)")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}

	if !c.NewOrderCartPolicy.Valid() {
		return fmt.Errorf("unknown new order cart policy %q", c.NewOrderCartPolicy)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RegistrationPromptDelay < 0 {
		return fmt.Errorf("registration prompt delay must not be negative, got %s", c.RegistrationPromptDelay)
	}
	if c.DispatchQueueSize < 1 {
		return fmt.Errorf("dispatch queue size must be positive, got %d", c.DispatchQueueSize)
	}

	return nil
}
