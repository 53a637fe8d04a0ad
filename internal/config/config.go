package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. TIMETALLY_API_PORT
const EnvPrefix = "TIMETALLY"

// Log subscribers
const (
	SubscriberStdout = "stdout"
	SubscriberFile   = "file"
	SubscriberLoki   = "loki"
)

// Config represents application configuration
type Config struct {
	APINetwork     string `mapstructure:"api_network"`
	APIPort        int    `mapstructure:"api_port"`
	Metrics        bool   `mapstructure:"metrics"`
	MetricsNetwork string `mapstructure:"metrics_network"`
	MetricsPort    int    `mapstructure:"metrics_port"`
	Subscriber     string `mapstructure:"subscriber"`
	Verbose        int    `mapstructure:"verbose"`
	LogFile        string `mapstructure:"log_file"`
	Env            string `mapstructure:"env"` // "dev" or "prod"
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"api-network":     "api_network",
	"api-port":        "api_port",
	"metrics":         "metrics",
	"metrics-network": "metrics_network",
	"metrics-port":    "metrics_port",
	"subscriber":      "subscriber",
	"verbose":         "verbose",
	"log-file":        "log_file",
	"env":             "env",
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		APINetwork:     "0.0.0.0",
		APIPort:        3200,
		Metrics:        false,
		MetricsNetwork: "127.0.0.1",
		MetricsPort:    3201,
		Subscriber:     SubscriberStdout,
		Verbose:        3,
		LogFile:        "logs/timetally.log",
		Env:            "dev",
	}
}

// RegisterFlags adds the server flags to a flag set
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()

	flags.StringP("api-network", "n", def.APINetwork, "Network interface IPv4 address for the API server")
	flags.IntP("api-port", "p", def.APIPort, "Port for the API server (1-65535)")
	flags.BoolP("metrics", "m", def.Metrics, "Enable the metrics server")
	flags.String("metrics-network", def.MetricsNetwork, "Network interface IPv4 address for the metrics server")
	flags.Int("metrics-port", def.MetricsPort, "Port for the metrics server (1-65535)")
	flags.StringP("subscriber", "s", def.Subscriber, "Log sink: stdout or file")
	flags.CountP("verbose", "v", "Log level: -v error, -vv warn, -vvv info, -vvvv debug")
	flags.String("log-file", def.LogFile, "Log file path for the file subscriber")
	flags.String("env", def.Env, "Environment: dev or prod")
}

// Load loads configuration from defaults, an optional config file,
// TIMETALLY_* environment variables (also read from a .env file) and
// changed command line flags, in increasing order of precedence.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()

	def := Default()
	v.SetDefault("api_network", def.APINetwork)
	v.SetDefault("api_port", def.APIPort)
	v.SetDefault("metrics", def.Metrics)
	v.SetDefault("metrics_network", def.MetricsNetwork)
	v.SetDefault("metrics_port", def.MetricsPort)
	v.SetDefault("subscriber", def.Subscriber)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("env", def.Env)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if ip := net.ParseIP(c.APINetwork); ip == nil || ip.To4() == nil {
		return fmt.Errorf("api_network must be an IPv4 address, got '%s'", c.APINetwork)
	}
	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("api_port must be between 1 and 65535, got %d", c.APIPort)
	}

	if c.Metrics {
		if ip := net.ParseIP(c.MetricsNetwork); ip == nil || ip.To4() == nil {
			return fmt.Errorf("metrics_network must be an IPv4 address, got '%s'", c.MetricsNetwork)
		}
		if c.MetricsPort < 1 || c.MetricsPort > 65535 {
			return fmt.Errorf("metrics_port must be between 1 and 65535, got %d", c.MetricsPort)
		}
		if c.MetricsPort == c.APIPort && c.MetricsNetwork == c.APINetwork {
			return fmt.Errorf("metrics and api servers cannot share %s", c.APIAddr())
		}
	}

	switch c.Subscriber {
	case SubscriberStdout:
	case SubscriberFile:
		if c.LogFile == "" {
			return fmt.Errorf("log_file is required for the file subscriber")
		}
	case SubscriberLoki:
		return fmt.Errorf("subscriber 'loki' is not supported")
	default:
		return fmt.Errorf("subscriber must be 'stdout' or 'file', got '%s'", c.Subscriber)
	}

	if c.Verbose < 1 {
		return fmt.Errorf("verbose must be at least 1, got %d", c.Verbose)
	}

	if c.Env != "dev" && c.Env != "prod" {
		return fmt.Errorf("env must be 'dev' or 'prod', got '%s'", c.Env)
	}

	return nil
}

// APIAddr returns the listen address of the API server
func (c *Config) APIAddr() string {
	return net.JoinHostPort(c.APINetwork, strconv.Itoa(c.APIPort))
}

// MetricsAddr returns the listen address of the metrics server
func (c *Config) MetricsAddr() string {
	return net.JoinHostPort(c.MetricsNetwork, strconv.Itoa(c.MetricsPort))
}
