package main

import (
	"time"

	"github.com/kbukum/rxkit/config"
	"github.com/kbukum/rxkit/observability"
	"github.com/kbukum/rxkit/server"
	"github.com/kbukum/rxkit/validation"
	"github.com/kbukum/rxkit/version"
)

// DemoConfig is the rxdemo configuration file.
type DemoConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Stream        StreamConfig         `yaml:"rxdemo" mapstructure:"rxdemo"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// StreamConfig parameterises the demo chain. Exclude and Delay are pointers
// so that an explicit 0 in the file is kept rather than defaulted.
type StreamConfig struct {
	Values  []string       `yaml:"values" mapstructure:"values" validate:"required,min=1"`
	Divisor float64        `yaml:"divisor" mapstructure:"divisor" validate:"required"`
	Exclude *float64       `yaml:"exclude" mapstructure:"exclude"`
	Delay   *time.Duration `yaml:"delay" mapstructure:"delay"`
}

// Validate checks the stream section. Call it after ApplyDefaults.
func (c *StreamConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return validation.New().
		Present("exclude", c.Exclude).
		Present("delay", c.Delay).
		NonNegative("delay", c.delay()).
		Validate()
}

func (c StreamConfig) exclude() float64 {
	if c.Exclude == nil {
		return 0
	}
	return *c.Exclude
}

func (c StreamConfig) delay() time.Duration {
	if c.Delay == nil {
		return 0
	}
	return *c.Delay
}

// ApplyDefaults fills unset fields. The stream defaults print 1 and then 3.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "rxdemo"
	}
	if c.Version == "" {
		c.Version = version.Short()
	}
	c.ServiceConfig.ApplyDefaults()

	if len(c.Stream.Values) == 0 {
		c.Stream.Values = []string{"10", "20", "30"}
	}
	if c.Stream.Divisor == 0 {
		c.Stream.Divisor = 10
	}
	if c.Stream.Exclude == nil {
		exclude := 2.0
		c.Stream.Exclude = &exclude
	}
	if c.Stream.Delay == nil {
		delay := 2 * time.Second
		c.Stream.Delay = &delay
	}

	c.Server.ApplyDefaults()

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = c.Version
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Observability.ApplyDefaults()
}

// Validate checks every section and returns the first failure.
func (c *DemoConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Stream.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}
