// Package envloader fills configuration structs from environment variables
// using "env" and "envDefault" struct tags. It supports strings, numeric
// types, booleans, floats and time.Duration, and walks nested structs so a
// whole configuration tree can be overridden from the environment in one
// call:
//
//	type Config struct {
//		Region     string        `env:"AWS_REGION" envDefault:"us-east-1"`
//		MaxRetries int           `env:"DYNDB_MAX_RETRIES" envDefault:"3"`
//		RetryDelay time.Duration `env:"DYNDB_RETRY_DELAY" envDefault:"100ms"`
//	}
//
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil {
//		...
//	}
//
// Fields without an env tag are ignored, and envDefault values only fill
// fields still at their zero value, so the package composes cleanly with
// file-based configuration loaded beforehand: precedence is environment,
// then file, then default.
package envloader
