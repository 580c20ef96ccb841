// main.go
package main

import (
	"context"
	"log"
	"time"

	"amc-tools/cmd"
	"amc-tools/internal/amc"
	"amc-tools/internal/automation"
	"amc-tools/internal/wire"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Vendor API client; the key must work or the process refuses to start
	client := amc.NewClient(config.AMC, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := client.ValidateKey(ctx); err != nil {
		cancel()
		logger.Fatal("AMC API key validation failed", zap.Error(err))
	}
	cancel()

	logger.Info("AMC API key validated")

	// Shared browser process for the booking driver
	sessions := automation.NewSessionStore()
	driver, err := automation.NewDriver(config.Browser, sessions, logger)
	if err != nil {
		logger.Fatal("Failed to launch browser", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(client, driver, sessions, logger)

	// Start server; the browser closes only on shutdown
	cmd.APIServer(app.Router, config.App.Port, logger, func() {
		if err := driver.Close(); err != nil {
			logger.Error("Failed to close browser", zap.Error(err))
		}
	})
}
