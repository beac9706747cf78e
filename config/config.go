// Package config reads service configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DefaultFPS is the frame rate assumed for parse requests that
	// don't carry one.
	DefaultFPS int `envconfig:"DEFAULT_FPS" default:"24"`

	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`

	Redis Redis
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	DB       int    `envconfig:"REDIS_DB"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// LoadConfig reads configuration from EDITMASTER_* environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	err := envconfig.Process("editmaster", &c)
	return &c, err
}

// Logger builds the service logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(lvl)
	return l, nil
}
