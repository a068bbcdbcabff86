package main

import (
	"log"

	"sms-relay/internal/api"
	"sms-relay/internal/config"
	"sms-relay/internal/logging"
	"sms-relay/internal/sms"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging.Dir, cfg.Logging.Level)

	// Delivery provider
	sender := sms.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken)

	// Start API server
	router := api.NewRouter(cfg, logger, sender)
	logger.Infof("Starting API server on %s", cfg.API.Port)
	if err := router.Run(cfg.API.Port); err != nil {
		logger.Errorf("API server failed: %v", err)
	}
}
