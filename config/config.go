package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Node     NodeConfig     `mapstructure:"node"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// WalletConfig describes the view-only wallet that observes incoming payments.
type WalletConfig struct {
	PrimaryAddress       string        `mapstructure:"primary_address"`
	SecretViewKey        string        `mapstructure:"secret_view_key"`
	DefaultConfirmations uint64        `mapstructure:"default_confirmations"`
	Network              string        `mapstructure:"network"` // mainnet, stagenet
	Filename             string        `mapstructure:"filename"`
	Password             string        `mapstructure:"password"`
	RPCURI               string        `mapstructure:"rpc_uri"`
	RPCUsername          string        `mapstructure:"rpc_username"`
	RPCPassword          string        `mapstructure:"rpc_password"`
	RPCTimeout           time.Duration `mapstructure:"rpc_timeout"`
}

// NodeConfig describes the remote ledger node the wallet syncs against.
type NodeConfig struct {
	URI           string        `mapstructure:"uri"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	Timeout       time.Duration `mapstructure:"timeout"`        // per health check
	CheckInterval time.Duration `mapstructure:"check_interval"` // between health checks
}

type SyncConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SPAY_.
// Nested keys use underscore: SPAY_NODE_URI, SPAY_WALLET_SECRET_VIEW_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("wallet.primary_address", "")
	v.SetDefault("wallet.secret_view_key", "")
	v.SetDefault("wallet.default_confirmations", 10)
	v.SetDefault("wallet.network", "mainnet")
	v.SetDefault("wallet.filename", "simplepay-view")
	v.SetDefault("wallet.password", "")
	v.SetDefault("wallet.rpc_uri", "http://127.0.0.1:18083")
	v.SetDefault("wallet.rpc_username", "")
	v.SetDefault("wallet.rpc_password", "")
	v.SetDefault("wallet.rpc_timeout", "2m")
	v.SetDefault("node.uri", "http://127.0.0.1:18081")
	v.SetDefault("node.username", "")
	v.SetDefault("node.password", "")
	v.SetDefault("node.timeout", "40s")
	v.SetDefault("node.check_interval", "5s")
	v.SetDefault("sync.interval", "5s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "simplepay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "720h")
	v.SetDefault("jwt.issuer", "simplepay")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// SPAY_NODE_URI -> node.uri
	v.SetEnvPrefix("SPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first configuration problem that would prevent the
// wallet from observing payments.
func (c *Config) Validate() error {
	var errs []error
	if c.Wallet.PrimaryAddress == "" {
		errs = append(errs, errors.New("wallet.primary_address is required"))
	}
	if c.Wallet.SecretViewKey == "" {
		errs = append(errs, errors.New("wallet.secret_view_key is required"))
	}
	if c.Wallet.DefaultConfirmations == 0 {
		errs = append(errs, errors.New("wallet.default_confirmations must be positive"))
	}
	switch c.Wallet.Network {
	case "mainnet", "stagenet":
	default:
		errs = append(errs, fmt.Errorf("wallet.network %q is not one of mainnet, stagenet", c.Wallet.Network))
	}
	if c.Node.URI == "" {
		errs = append(errs, errors.New("node.uri is required"))
	}
	if c.Node.Timeout <= 0 {
		errs = append(errs, errors.New("node.timeout must be positive"))
	}
	if c.Node.CheckInterval <= 0 {
		errs = append(errs, errors.New("node.check_interval must be positive"))
	}
	if c.Sync.Interval <= 0 {
		errs = append(errs, errors.New("sync.interval must be positive"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	return errors.Join(errs...)
}
