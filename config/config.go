package config

import (
	"github.com/kbukum/unic/errors"
	"github.com/kbukum/unic/lineio"
	"github.com/kbukum/unic/logger"
	"github.com/kbukum/unic/observability"
	"github.com/kbukum/unic/validation"
)

// AppName names the config file, the environment prefix and the logger.
const AppName = "unic"

// Config is the complete configuration of one unic invocation.
//
// Example unic.yml:
//
//	show_count: true
//	logging:
//	  level: debug
//	  format: json
//	telemetry:
//	  endpoint: localhost:4318
//	  insecure: true
type Config struct {
	// Input is the path to read, "-" for standard input.
	Input string `yaml:"input" mapstructure:"input" validate:"required"`
	// Output is the path to write, empty for standard output.
	Output string `yaml:"output" mapstructure:"output"`
	// ShowCount prefixes every emitted line with its run length.
	ShowCount bool `yaml:"show_count" mapstructure:"show_count"`

	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// LoggingConfig returns the logging section.
func (c *Config) LoggingConfig() *logger.Config { return &c.Logging }

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = lineio.StdinPath
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks struct tags first, then the rules that span fields.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Validation(err.Error()).WithCause(err)
	}

	logsToData := c.Output == "" && c.Logging.Output == "stdout" && c.Logging.Level != logger.LevelDisabled
	v := validation.New().
		DistinctFiles("output", c.Output, c.Input).
		Custom(!logsToData, "logging.output", "must not be stdout while output goes to standard output")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Load reads configuration for unic and applies defaults. It does not
// validate; callers validate once every override is in place.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(AppName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
