package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	AMC     AMCConfig
	Browser BrowserConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type AMCConfig struct {
	APIKey  string
	BaseURL string
}

type BrowserConfig struct {
	Headless      bool
	SlowMoMs      int
	StepTimeoutMs int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "amc-tools")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AMC_BASE_URL", "https://api.amctheatres.com")
	viper.SetDefault("BROWSER_HEADLESS", true)
	viper.SetDefault("BROWSER_SLOWMO_MS", 0)
	viper.SetDefault("BOOKING_STEP_TIMEOUT_MS", 15000)

	// .env file is optional; plain environment variables are enough
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		AMC: AMCConfig{
			APIKey:  viper.GetString("AMC_API_KEY"),
			BaseURL: viper.GetString("AMC_BASE_URL"),
		},
		Browser: BrowserConfig{
			Headless:      viper.GetBool("BROWSER_HEADLESS"),
			SlowMoMs:      viper.GetInt("BROWSER_SLOWMO_MS"),
			StepTimeoutMs: viper.GetInt("BOOKING_STEP_TIMEOUT_MS"),
		},
	}

	if config.AMC.APIKey == "" {
		return nil, fmt.Errorf("AMC_API_KEY is required")
	}

	return config, nil
}
