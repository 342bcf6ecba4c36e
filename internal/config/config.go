package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the API and the seed command.
type Config struct {
	Env      string `envconfig:"GO_ENV" default:"development"`
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"168h"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	ServicesTable         string `envconfig:"SERVICES_TABLE" default:"services"`
	AddonsTable           string `envconfig:"ADDONS_TABLE" default:"addons"`
	BundlesTable          string `envconfig:"BUNDLES_TABLE" default:"bundles"`
	QuotationsTable       string `envconfig:"QUOTATIONS_TABLE" default:"quotations"`
	QuotationNumbersTable string `envconfig:"QUOTATION_NUMBERS_TABLE" default:"quotation_numbers"`
	UsersTable            string `envconfig:"USERS_TABLE" default:"users"`

	// RedisAddress empty disables the shared numbering sequence.
	RedisAddress         string `envconfig:"REDIS_ADDRESS"`
	QuotationSequenceKey string `envconfig:"QUOTATION_SEQUENCE_KEY" default:"quotation:sequence"`

	QuotationNumberPrefix string   `envconfig:"QUOTATION_NUMBER_PREFIX" default:"NEX"`
	CORSAllowedOrigins    []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWTTTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}
