// models/config.go
package models

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Calrion/moonmail-models/dyndb"
	"github.com/Calrion/moonmail-models/envloader"
	"github.com/Calrion/moonmail-models/pkg/logger"
	"github.com/Calrion/moonmail-models/pkg/metrics"
)

// RetryConf is the YAML-facing form of the client retry policy. Delay is a
// duration string ("100ms", "2s") because YAML has no native duration.
type RetryConf struct {
	MaxRetries int    `yaml:"maxRetries" env:"DYNDB_MAX_RETRIES" envDefault:"3" validate:"min=0"`
	Delay      string `yaml:"delay" env:"DYNDB_RETRY_DELAY" envDefault:"100ms"`
}

// Policy converts the section into the client's retry policy.
func (r RetryConf) Policy() (dyndb.RetryPolicy, error) {
	p := dyndb.DefaultRetryPolicy
	p.MaxRetries = r.MaxRetries
	if r.Delay != "" {
		d, err := time.ParseDuration(r.Delay)
		if err != nil {
			return p, fmt.Errorf("config: parse retry delay %q: %w", r.Delay, err)
		}
		p.Delay = d
	}
	return p, nil
}

// Tables names the DynamoDB tables backing each entity.
type Tables struct {
	Campaigns  string `yaml:"campaigns" env:"CAMPAIGNS_TABLE" validate:"required"`
	Recipients string `yaml:"recipients" env:"RECIPIENTS_TABLE" validate:"required"`
	Lists      string `yaml:"lists" env:"LISTS_TABLE" validate:"required"`
}

// Config is the explicit wiring for the whole data layer. Everything is
// passed in; nothing is read implicitly at call time.
type Config struct {
	Region  string         `yaml:"region" env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	Tables  Tables         `yaml:"tables"`
	Retry   RetryConf      `yaml:"retry"`
	Logging logger.Conf    `yaml:"logging"`
	Metrics metrics.Config `yaml:"metrics"`
}

// LoadConfig reads a YAML file, applies environment overrides and validates
// the result. The file may be absent entirely when the environment provides
// every required value; pass an empty path for that.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("config: apply environment: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Retry.Policy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validate: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fe.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s failed rule %q", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("config: invalid configuration: %s", strings.Join(msgs, "; "))
}
