// Package config implements configuration for the watchman executable
// using https://github.com/spf13/viper.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Contains all the keys for watchman's shared config
const (
	LogLevelKey = "loglevel"
	ParallelKey = "parallel"
)

// LogLevel is the logging level used by the CLI.
var LogLevel string

// Parallel is the number of goroutines used to evaluate a query.
var Parallel int

// Load watchman's config.
func Load() error {
	// Set any defaults
	viper.SetDefault(LogLevelKey, "warn")
	viper.SetDefault(ParallelKey, runtime.NumCPU())

	// Tell viper that the config. can be read from WATCHMAN_<entry>
	// environment variables
	viper.SetEnvPrefix("WATCHMAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load the shared config
	LogLevel = viper.GetString(LogLevelKey)
	Parallel = viper.GetInt(ParallelKey)

	return nil
}
