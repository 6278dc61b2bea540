package bootstrap

import "github.com/kbukum/unic/logger"

// Config is the interface constraint for application configuration types.
// *config.Config satisfies it.
type Config interface {
	LoggingConfig() *logger.Config
	ApplyDefaults()
	Validate() error
}
