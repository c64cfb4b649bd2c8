package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"pesapal_gateway/pkg/pesapal"

	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var ErrMissingCredentials = errors.New("PESAPAL_CONSUMER_KEY and PESAPAL_CONSUMER_SECRET are required")

// Config holds everything the API and CLI read from the environment or from
// the optional file named by PESAPAL_CONFIG_FILE. Environment wins.
type Config struct {
	Pesapal  PesapalConfig `mapstructure:"pesapal"`
	Server   ServerConfig  `mapstructure:"server"`
	Storage  StorageConfig `mapstructure:"storage"`
	MockMode bool          `mapstructure:"-"`
}

type PesapalConfig struct {
	Environment          string `mapstructure:"environment"`
	ConsumerKey          string `mapstructure:"consumer_key"`
	ConsumerSecret       string `mapstructure:"consumer_secret"`
	IPNURL               string `mapstructure:"ipn_url"`
	CallbackURL          string `mapstructure:"callback_url"`
	CountryCode          string `mapstructure:"country_code"`
	Currency             string `mapstructure:"currency"`
	BaseURL              string `mapstructure:"base_url"`
	RegisterIPNOnStartup bool   `mapstructure:"register_ipn_on_startup"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StorageConfig struct {
	Backend            string `mapstructure:"backend"`
	AWSRegion          string `mapstructure:"aws_region"`
	DynamoDBEndpoint   string `mapstructure:"dynamodb_endpoint"`
	PaymentOrdersTable string `mapstructure:"payment_orders_table"`
	DSN                string `mapstructure:"dsn"`
}

var envBindings = map[string][]string{
	"pesapal.environment":             {"PESAPAL_ENVIRONMENT"},
	"pesapal.consumer_key":            {"PESAPAL_CONSUMER_KEY"},
	"pesapal.consumer_secret":         {"PESAPAL_CONSUMER_SECRET"},
	"pesapal.ipn_url":                 {"PESAPAL_IPN_URL"},
	"pesapal.callback_url":            {"PESAPAL_CALLBACK_URL"},
	"pesapal.country_code":            {"PESAPAL_COUNTRY_CODE"},
	"pesapal.currency":                {"PESAPAL_CURRENCY"},
	"pesapal.base_url":                {"PESAPAL_BASE_URL"},
	"pesapal.register_ipn_on_startup": {"PESAPAL_REGISTER_IPN_ON_STARTUP"},
	"server.port":                     {"PORT"},
	"storage.backend":                 {"REPO_BACKEND"},
	"storage.aws_region":              {"AWS_REGION"},
	"storage.dynamodb_endpoint":       {"DYNAMODB_ENDPOINT"},
	"storage.payment_orders_table":    {"PAYMENT_ORDERS_TABLE"},
	"storage.dsn":                     {"DB_DSN"},
	"mock_mode":                       {"PAYMENT_GATEWAY_MOCK", "PESAPAL_MOCK"},
}

// Load reads defaults, then the optional config file, then the environment.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, err
		}
	}

	if path := strings.TrimSpace(os.Getenv("PESAPAL_CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		log.Printf("[config] loaded file=%s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.MockMode = isTruthy(v.GetString("mock_mode"))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pesapal.environment", pesapal.EnvironmentSandbox)
	v.SetDefault("pesapal.country_code", pesapal.DefaultCountryCode)
	v.SetDefault("pesapal.currency", pesapal.DefaultCurrency)
	v.SetDefault("pesapal.register_ipn_on_startup", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.backend", BackendDynamoDB)
	v.SetDefault("storage.aws_region", "us-east-1")
	v.SetDefault("storage.payment_orders_table", "payment_orders")
	v.SetDefault("mock_mode", "")
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	if !c.MockMode && (strings.TrimSpace(c.Pesapal.ConsumerKey) == "" || strings.TrimSpace(c.Pesapal.ConsumerSecret) == "") {
		return ErrMissingCredentials
	}
	switch c.Storage.Backend {
	case BackendDynamoDB, BackendMemory:
	case BackendPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("DB_DSN is required for %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unsupported REPO_BACKEND=%s", c.Storage.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT=%d", c.Server.Port)
	}
	return nil
}

// PesapalClientConfig builds the client configuration. The logger is left to
// the caller.
func (c Config) PesapalClientConfig() pesapal.Config {
	return pesapal.Config{
		Environment:    c.Pesapal.Environment,
		ConsumerKey:    c.Pesapal.ConsumerKey,
		ConsumerSecret: c.Pesapal.ConsumerSecret,
		IPNURL:         c.Pesapal.IPNURL,
		CallbackURL:    c.Pesapal.CallbackURL,
		BaseURL:        c.Pesapal.BaseURL,
		CountryCode:    c.Pesapal.CountryCode,
		Currency:       c.Pesapal.Currency,
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
