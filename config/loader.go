package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kbukum/unic/errors"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for an application.
// Explicit paths win; otherwise the standard locations are searched.
func (cr *Resolver) ResolveFiles(appName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findConfigFile(appName)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findEnvFile(appName)
	}

	return resolved
}

// ConfigSearchPaths lists the config file locations for appName in the
// order they are tried.
func (cr *Resolver) ConfigSearchPaths(appName string) []string {
	paths := []string{
		fmt.Sprintf("./%s.yml", appName),
		fmt.Sprintf("./config/%s.yml", appName),
	}
	if dir, err := cr.FileSystem.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, appName, "config.yml"))
	}
	return paths
}

// findConfigFile returns the first existing config file.
func (cr *Resolver) findConfigFile(appName string) string {
	for _, path := range cr.ConfigSearchPaths(appName) {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for .env files next to the config file locations.
func (cr *Resolver) findEnvFile(appName string) string {
	envFiles := []string{
		fmt.Sprintf(".env.%s", appName),
		".env",
	}

	for _, envFile := range envFiles {
		for _, basePath := range []string{".", "./config"} {
			fullPath := basePath + "/" + envFile
			if cr.FileSystem.Exists(fullPath) {
				return fullPath
			}
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)

	flags     map[string]*pflag.Flag
	overrides map[string]any
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path. Unlike searched files,
// an explicit file must exist.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithFlag binds a command-line flag to key. The flag overrides file and
// environment values only when it was set on the command line.
func WithFlag(key string, flag *pflag.Flag) LoaderOption {
	return func(lc *LoaderConfig) {
		if flag == nil {
			return
		}
		if lc.flags == nil {
			lc.flags = make(map[string]*pflag.Flag)
		}
		lc.flags[key] = flag
	}
}

// WithOverride forces key to value above every other source.
func WithOverride(key string, value any) LoaderOption {
	return func(lc *LoaderConfig) {
		if lc.overrides == nil {
			lc.overrides = make(map[string]any)
		}
		lc.overrides[key] = value
	}
}

// LoadConfig loads configuration for appName into cfg. Sources, from lowest
// to highest precedence: config file, .env file and environment variables
// prefixed with the upper-cased app name, bound flags, overrides.
func LoadConfig(appName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	if lc.ConfigFile != "" && !lc.FileSystem.Exists(lc.ConfigFile) {
		return errors.InvalidConfig("config", fmt.Sprintf("%s: no such file", lc.ConfigFile))
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(appName, lc)

	return loadFromResolvedFiles(appName, cfg, files, lc)
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(appName string, cfg interface{}, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()
	prefix := strings.ToUpper(appName) + "_"

	// 1. YAML config (base configuration)
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidConfig("config", fmt.Sprintf("%s: %v", files.ConfigFile, err)).WithCause(err)
		}
	}

	// 2. .env file, which only fills variables not already in the environment
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return errors.InvalidConfig("env", fmt.Sprintf("%s: %v", files.EnvFile, err)).WithCause(err)
		}
	}

	// 3. Environment variables
	autoBindEnvVars(v, prefix)

	// 4. Flags set on the command line
	for key, flag := range lc.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Internal(err)
		}
	}

	// 5. Explicit overrides
	for key, value := range lc.overrides {
		v.Set(key, value)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidConfig("", fmt.Sprintf("failed to decode configuration for %s: %v", appName, err)).WithCause(err)
	}

	return nil
}

// autoBindEnvVars binds every environment variable carrying prefix to the
// nested keys its remaining name could address, so UNIC_LOGGING_LEVEL reaches
// logging.level and UNIC_SHOW_COUNT reaches show_count.
func autoBindEnvVars(v *viper.Viper, prefix string) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}

		key := pair[0]
		for _, variant := range generateEnvKeyVariants(strings.TrimPrefix(key, prefix)) {
			_ = v.BindEnv(variant, key)
		}
	}
}

// generateEnvKeyVariants creates all possible key variants for environment variable binding.
// Examples:
//
//	SHOW_COUNT              -> [show_count, show.count]
//	TELEMETRY_SAMPLE_RATE   -> [telemetry_sample_rate, telemetry.sample.rate, telemetry.sample_rate, ...]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	// Progressive nesting: a.b_c_d, a.b.c_d, ...
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings from a slice.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
