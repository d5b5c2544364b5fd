package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration for the optional birthday ledger
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL                   string        `mapstructure:"url"`
	StreamName            string        `mapstructure:"stream_name"`
	ConsumerName          string        `mapstructure:"consumer_name"`
	CommandSubject        string        `mapstructure:"command_subject"`
	OutboundSubjectPrefix string        `mapstructure:"outbound_subject_prefix"`
	TriviaSubject         string        `mapstructure:"trivia_subject"`
	MaxReconnects         int           `mapstructure:"max_reconnects"`
	ReconnectWait         time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName        string        `mapstructure:"connection_name"`
	AckWait               time.Duration `mapstructure:"ack_wait"`
	MaxDeliver            int           `mapstructure:"max_deliver"`
}

// EthereumConfig holds Ethereum-specific configuration
type EthereumConfig struct {
	RPCURL      string `mapstructure:"rpc_url"`
	ENSRegistry string `mapstructure:"ens_registry"`
}

// VendorsConfig holds vendor API configurations
type VendorsConfig struct {
	ArtBlocksURL         string `mapstructure:"artblocks_url"`
	ArtBlocksTokenAPIURL string `mapstructure:"artblocks_token_api_url"`
	ArtBlocksSiteURL     string `mapstructure:"artblocks_site_url"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// Credentials for the /v1 routes; none leaves them open
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`

	// Browser origins allowed to call the ops server; empty allows any
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// WalletConfig holds the wallet holdings cache configuration
type WalletConfig struct {
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"` // 0 keeps holdings forever
}

// BirthdayConfig holds the birthday announcement configuration
type BirthdayConfig struct {
	BaseHour         int  `mapstructure:"base_hour"`
	ReannounceYearly bool `mapstructure:"reannounce_yearly"`
}

// TriviaConfig holds the trivia routine configuration
type TriviaConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig throttles calls to the token metadata API
type RateLimitConfig struct {
	TokenAPIRPS   float64       `mapstructure:"token_api_rps"`
	TokenAPIBurst int           `mapstructure:"token_api_burst"`
	MaxQueueTime  time.Duration `mapstructure:"max_queue_time"`
}

// BotConfig holds command handling configuration
type BotConfig struct {
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	PoolSize       int           `mapstructure:"pool_size"`
	QueueSize      int           `mapstructure:"queue_size"`
}

// ArtBotConfig holds configuration for the artbot service
type ArtBotConfig struct {
	BaseConfig             `mapstructure:",squash"`
	RefreshIntervalMinutes int             `mapstructure:"refresh_interval_minutes"`
	RegistryPath           string          `mapstructure:"registry_path"`
	HTTPTimeout            time.Duration   `mapstructure:"http_timeout"`
	Vendors                VendorsConfig   `mapstructure:"vendors"`
	Ethereum               EthereumConfig  `mapstructure:"ethereum"`
	NATS                   NATSConfig      `mapstructure:"nats"`
	Wallet                 WalletConfig    `mapstructure:"wallet"`
	Birthday               BirthdayConfig  `mapstructure:"birthday"`
	Trivia                 TriviaConfig    `mapstructure:"trivia"`
	Bot                    BotConfig       `mapstructure:"bot"`
	RateLimit              RateLimitConfig `mapstructure:"rate_limit"`
	Database               DatabaseConfig  `mapstructure:"database"`
	Server                 ServerConfig    `mapstructure:"server"`
}

// RefreshInterval returns the catalog refresh interval as a duration
func (c *ArtBotConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMinutes) * time.Minute
}

// LoadArtBotConfig loads configuration for the artbot service
func LoadArtBotConfig(configFile string, envPath string) (*ArtBotConfig, error) {
	v := configureViper("artbot", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("refresh_interval_minutes", 60)
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("vendors.artblocks_url", "https://artblocks-mainnet.hasura.app/v1/graphql")
	v.SetDefault("vendors.artblocks_token_api_url", "https://token.artblocks.io")
	v.SetDefault("vendors.artblocks_site_url", "https://www.artblocks.io")
	v.SetDefault("ethereum.ens_registry", "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	v.SetDefault("nats.stream_name", "ARTBOT")
	v.SetDefault("nats.consumer_name", "artbot")
	v.SetDefault("nats.command_subject", "artbot.commands")
	v.SetDefault("nats.outbound_subject_prefix", "artbot.outbound")
	v.SetDefault("nats.trivia_subject", "artbot.trivia.ask")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "artbot")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	v.SetDefault("wallet.cache_size", 1024)
	v.SetDefault("wallet.cache_ttl", "0s")
	v.SetDefault("birthday.base_hour", 14)
	v.SetDefault("birthday.reannounce_yearly", false)
	v.SetDefault("trivia.enabled", false)
	v.SetDefault("trivia.timeout", "10m")
	v.SetDefault("bot.command_timeout", "30s")
	v.SetDefault("bot.pool_size", 16)
	v.SetDefault("bot.queue_size", 256)
	v.SetDefault("rate_limit.token_api_rps", 5)
	v.SetDefault("rate_limit.token_api_burst", 10)
	v.SetDefault("rate_limit.max_queue_time", "5s")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("server.enabled", true)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config ArtBotConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values a running bot cannot do without
func (c *ArtBotConfig) Validate() error {
	if c.RefreshIntervalMinutes <= 0 {
		return errors.New("refresh_interval_minutes must be positive")
	}
	if c.Birthday.BaseHour < 0 || c.Birthday.BaseHour > 23 {
		return fmt.Errorf("birthday.base_hour must be within 0-23, got %d", c.Birthday.BaseHour)
	}
	if c.Wallet.CacheSize < 0 {
		return errors.New("wallet.cache_size must not be negative")
	}
	if c.Wallet.CacheTTL < 0 {
		return errors.New("wallet.cache_ttl must not be negative")
	}
	if c.RateLimit.TokenAPIRPS <= 0 {
		return errors.New("rate_limit.token_api_rps must be positive")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/artbot/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ARTBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"refresh_interval_minutes",
		"registry_path",
		"http_timeout",
		// Vendors
		"vendors.artblocks_url",
		"vendors.artblocks_token_api_url",
		"vendors.artblocks_site_url",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.ens_registry",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.command_subject",
		"nats.outbound_subject_prefix",
		"nats.trivia_subject",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Wallet
		"wallet.cache_size",
		"wallet.cache_ttl",
		// Birthday
		"birthday.base_hour",
		"birthday.reannounce_yearly",
		// Trivia
		"trivia.enabled",
		"trivia.timeout",
		// Bot
		"bot.command_timeout",
		"bot.pool_size",
		"bot.queue_size",
		// Rate limit
		"rate_limit.token_api_rps",
		"rate_limit.token_api_burst",
		"rate_limit.max_queue_time",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.enabled",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.jwt_public_key",
		"server.api_keys",
		"server.cors_origins",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Enabled reports whether a database ledger is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
