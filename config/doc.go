// Package config loads unic configuration.
//
// It uses Viper to merge, from lowest to highest precedence, a YAML config
// file, a .env file and UNIC_-prefixed environment variables, command-line
// flags, and positional arguments.
//
// # Usage
//
//	cfg, err := config.Load(
//	    config.WithConfigFile(path),
//	    config.WithFlag("show_count", cmd.Flags().Lookup("count")),
//	    config.WithOverride("input", args[0]),
//	)
//
// Without an explicit file, ./unic.yml, ./config/unic.yml and
// $XDG_CONFIG_HOME/unic/config.yml are tried in that order.
package config
