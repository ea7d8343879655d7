// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, overlaid with BIIBII_*
// environment variables and validated before the application starts.
package config
