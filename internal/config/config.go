// Package config holds the configuration of the catalog service.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/minicatalog/pkg/config"
	"github.com/abgdnv/minicatalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Log        config.LogConfig      `koanf:"log"`
	PProf      config.PProfConfig    `koanf:"pprof"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
	NATS       config.NATSConfig     `koanf:"nats"`
}

// Defaults returns the built-in configuration, overridden by config.yaml, .env and CATALOG_* variables.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               5001,
		"server.maxheaderbytes":     1 << 20,
		"server.maxbodybytes":       1 << 20,
		"server.timeout.read":       "10s",
		"server.timeout.write":      "10s",
		"server.timeout.idle":       "60s",
		"server.timeout.readheader": "5s",
		"log.level":                 "info",
		"pprof.enabled":             false,
		"pprof.addr":                "localhost:6060",
		"shutdown.timeout":          "15s",
		"nats.enabled":              false,
		"nats.url":                  "nats://localhost:4222",
		"nats.timeout":              "5s",
		"nats.stream":               "PRODUCTS",
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.NATS.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []configloader.Validator{&c.HTTPServer, &c.Log, &c.PProf, &c.Shutdown, &c.NATS}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}
