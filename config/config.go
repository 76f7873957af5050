package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./config/config.yml"

type Config struct {
	Server struct {
		Port int `yaml:"port" env:"PORT"`
	} `yaml:"server"`

	CORS struct {
		AllowOrigins []string `yaml:"allowOrigins" env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	} `yaml:"cors"`

	Database struct {
		URI string `yaml:"uri" env:"MONGO_URI"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Gemini struct {
		ApiKey string `yaml:"apiKey" env:"GEMINI_API_KEY"`
		Model  string `yaml:"model" env:"GEMINI_MODEL"`
	} `yaml:"gemini"`

	Cognito struct {
		AppClientId     string `yaml:"appClientId" env:"COGNITO_APP_CLIENT_ID"`
		AppClientSecret string `yaml:"appClientSecret" env:"COGNITO_APP_CLIENT_SECRET"`
		UserPoolId      string `yaml:"userPoolId" env:"COGNITO_USER_POOL_ID"`
		Region          string `yaml:"region" env:"COGNITO_REGION"`
	} `yaml:"cognito"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		Expiry int    `yaml:"expiry" env:"JWT_EXPIRY"` // Token expiry in minutes
	} `yaml:"jwt"`

	RateLimit struct {
		Requests int `yaml:"requests" env:"RATE_LIMIT_REQUESTS"`
		Window   int `yaml:"window" env:"RATE_LIMIT_WINDOW"` // Window length in seconds
	} `yaml:"rateLimit"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"log"`
}

// Path returns the config file location, honouring CONFIG_PATH.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// LoadConfig reads the configuration file, then applies .env and
// environment overrides. A missing file is not an error; defaults and the
// environment still apply.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Port = 1313
	cfg.CORS.AllowOrigins = []string{"http://localhost:5173"}
	cfg.Gemini.Model = "gemini-1.5-flash"
	cfg.JWT.Expiry = 24 * 60
	cfg.RateLimit.Requests = 30
	cfg.RateLimit.Window = 60
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return &cfg
}

// CognitoEnabled reports whether signup/login should go through Cognito.
func (c *Config) CognitoEnabled() bool {
	return c.Cognito.AppClientId != "" && c.Cognito.Region != ""
}
