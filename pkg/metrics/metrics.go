package metrics

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
)

// Provider is the contract for emitting metrics. It keeps the data layer
// free of a hard Datadog dependency and lets tests plug in a recorder.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Config selects and configures the provider.
type Config struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace"`
}

// NoopProvider is the placeholder used when metrics are disabled.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }

// DatadogProvider adapts the official Datadog client to the Provider
// interface.
type DatadogProvider struct {
	client *statsd.Client
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// Setup returns the provider selected by cfg: Datadog StatsD when enabled,
// a no-op otherwise.
func Setup(cfg Config) (Provider, error) {
	if !cfg.Enabled {
		return &NoopProvider{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Namespace),
	}

	client, err := statsd.New(cfg.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("metrics: connect to datadog statsd: %w", err)
	}

	return &DatadogProvider{client: client}, nil
}
