// Package config loads configuration for rxkit binaries.
//
// It uses Viper to read a YAML file and environment variables, and godotenv
// to load .env files. Environment variables override file values; with
// WithEnvPrefix only prefixed variables are considered.
//
// # Usage
//
//	var cfg DemoConfig
//	err := config.LoadConfig("rxdemo", &cfg, config.WithEnvPrefix("RX_"))
package config
