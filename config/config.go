package config

import (
	"github.com/ParthKapoor-dev/better-axios/httpclient"
	"github.com/ParthKapoor-dev/better-axios/logger"
)

// AppConfig is the ready-made configuration shape for applications embedding
// the client. Projects with more sections define their own struct and pass
// it to Load the same way.
type AppConfig struct {
	HTTP    httpclient.Config `yaml:"http" mapstructure:"http"`
	Logging logger.Config     `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies defaults to all nested sections.
func (c *AppConfig) ApplyDefaults() {
	c.HTTP.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate validates all nested sections.
func (c *AppConfig) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
