package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server ServerConfig
	Sweep  SweepConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// SweepConfig holds the default frequency sweep parameters
type SweepConfig struct {
	StartFreq float64
	EndFreq   float64
	Points    int
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("SWEEP_START_FREQ", 20.0)
	viper.SetDefault("SWEEP_END_FREQ", 20000.0)
	viper.SetDefault("SWEEP_POINTS", 500)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("SWEEP_START_FREQ")
	viper.BindEnv("SWEEP_END_FREQ")
	viper.BindEnv("SWEEP_POINTS")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Sweep.StartFreq = viper.GetFloat64("SWEEP_START_FREQ")
	config.Sweep.EndFreq = viper.GetFloat64("SWEEP_END_FREQ")
	config.Sweep.Points = viper.GetInt("SWEEP_POINTS")

	return &config, nil
}
