package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the whole application configuration, populated from env
type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
	Chain   ChainConfig
	Catalog CatalogConfig
	Wallet  WalletConfig
	CORS    CORSConfig
	Job     JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StoreConfig selects the repository backend: memory or postgres
type StoreConfig struct {
	Driver string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// =====================================================
// OBJECT STORAGE (Filebase, S3 compatible)
// =====================================================
type StorageConfig struct {
	Region     string
	Endpoint   string // https://s3.filebase.com
	AccessKey  string
	SecretKey  string
	Bucket     string
	GatewayURL string // prefix the CID is appended to
}

// Configured reports whether uploads can be served
func (s StorageConfig) Configured() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != "" && s.Bucket != ""
}

type ChainConfig struct {
	RPCURL      string
	ChainID     int64
	CallTimeout time.Duration
}

type CatalogConfig struct {
	Seed            bool
	DecrementSupply bool
	CacheTTL        time.Duration
}

type WalletConfig struct {
	DemoAddress string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type JobConfig struct {
	PurgeCacheCron string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Stillform API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", defaultJWTSecret),
			SessionExpiry: time.Duration(getEnvInt("JWT_SESSION_EXPIRY_HOURS", 24)) * time.Hour,
		},
		Storage: StorageConfig{
			Region:     getEnv("FILEBASE_REGION", "us-east-1"),
			Endpoint:   getEnv("FILEBASE_ENDPOINT", "https://s3.filebase.com"),
			AccessKey:  getEnv("FILEBASE_KEY", ""),
			SecretKey:  getEnv("FILEBASE_SECRET", ""),
			Bucket:     getEnv("FILEBASE_BUCKET", "stillform"),
			GatewayURL: getEnv("IPFS_GATEWAY_URL", "https://ipfs.filebase.io/ipfs/"),
		},
		Chain: ChainConfig{
			RPCURL:      getEnv("RPC_URL", ""),
			ChainID:     int64(getEnvInt("CHAIN_ID", 11155111)),
			CallTimeout: time.Duration(getEnvInt("RPC_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Catalog: CatalogConfig{
			Seed:            getEnvBool("CATALOG_SEED", true),
			DecrementSupply: getEnvBool("ORDERS_DECREMENT_SUPPLY", false),
			CacheTTL:        time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Wallet: WalletConfig{
			DemoAddress: getEnv("DEMO_WALLET_ADDRESS", "0xdef...456"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Job: JobConfig{
			PurgeCacheCron: getEnv("JOB_PURGE_CACHE_CRON", "@every 1h"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that cannot start
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER must be memory or postgres, got %q", c.Store.Driver)
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if !c.Storage.Configured() {
			fmt.Println("WARNING: FILEBASE_* not set - uploads will fail")
		}
		if c.Chain.RPCURL == "" {
			fmt.Println("WARNING: RPC_URL not set - on-chain reads will fail")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
