package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	GatewayEnvUAT  = "UAT"
	GatewayEnvProd = "PROD"

	ProdGatewayURL = "https://api.pluralpay.in/api"
	UATGatewayURL  = "https://pluraluat.v2.pinepg.in/api"

	envPrefix     = "CHECKOUT_"
	configFileEnv = "CHECKOUT_CONFIG_FILE"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Gateway   GatewayConfig   `koanf:"gateway"`
	Callback  CallbackConfig  `koanf:"callback"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logger    LoggerConfig    `koanf:"logger"`
	Tracing   TracingConfig   `koanf:"tracing"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development production"`
}

type ServerConfig struct {
	Port          string        `koanf:"port" validate:"required"`
	PublicBaseURL string        `koanf:"public_base_url"`
	ReadTimeout   time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout  time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout   time.Duration `koanf:"idle_timeout" validate:"required"`
}

// GatewayConfig holds the Plural API credentials. Timeout of zero leaves the
// HTTP client without a deadline.
type GatewayConfig struct {
	Environment  string        `koanf:"environment" validate:"required,oneof=UAT PROD"`
	BaseURL      string        `koanf:"base_url"`
	ClientID     string        `koanf:"client_id" validate:"required"`
	ClientSecret string        `koanf:"client_secret" validate:"required"`
	MerchantID   string        `koanf:"merchant_id"`
	Timeout      time.Duration `koanf:"timeout"`
}

type CallbackConfig struct {
	Strict            bool `koanf:"strict"`
	VerifyWithGateway bool `koanf:"verify_with_gateway"`
}

type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type TracingConfig struct {
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

var defaults = map[string]interface{}{
	"primary.env":                  EnvDevelopment,
	"server.port":                  "8080",
	"server.read_timeout":          "15s",
	"server.write_timeout":         "30s",
	"server.idle_timeout":          "60s",
	"gateway.environment":          GatewayEnvUAT,
	"callback.strict":              true,
	"callback.verify_with_gateway": false,
	"rate_limit.rps":               5.0,
	"rate_limit.burst":             10,
	"logger.level":                 "info",
	"logger.format":                "json",
	"tracing.service_name":         "plural-checkout",
}

// ResolvedBaseURL returns the gateway API root for the configured environment unless
// an explicit override is set.
func (g GatewayConfig) ResolvedBaseURL() string {
	if g.BaseURL != "" {
		return strings.TrimRight(g.BaseURL, "/")
	}
	if g.Environment == GatewayEnvProd {
		return ProdGatewayURL
	}
	return UATGatewayURL
}

// CallbackBaseURL is the origin the gateway redirects the shopper back to.
func (c *Config) CallbackBaseURL() string {
	if c.Primary.Env == EnvProduction {
		return strings.TrimRight(c.Server.PublicBaseURL, "/")
	}
	return "http://localhost:" + c.Server.Port
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if mainConfig.Primary.Env == EnvProduction && mainConfig.Server.PublicBaseURL == "" {
		err = fmt.Errorf("server.public_base_url is required in %s", EnvProduction)
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
