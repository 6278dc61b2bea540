// Package validation checks configuration before a pass starts.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report a single
// INVALID_CONFIG error listing every failing field.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Input string `mapstructure:"input" validate:"required"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.DistinctFiles("output", cfg.Output, cfg.Input)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
