package bootstrap

import (
	"context"
	"fmt"
	"strings"

	callsHandler "github.com/johnschneiider/Noxus/internal/calls/handler"
	callsProcessor "github.com/johnschneiider/Noxus/internal/calls/processor"
	openaiclient "github.com/johnschneiider/Noxus/internal/clients/openai"
	twilioclient "github.com/johnschneiider/Noxus/internal/clients/twilio"
	"github.com/johnschneiider/Noxus/internal/config"
	"github.com/johnschneiider/Noxus/internal/metrics"
	"github.com/johnschneiider/Noxus/internal/observability"
	"github.com/johnschneiider/Noxus/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store    store.Store
	Logger   *observability.Logger
	Registry *prometheus.Registry

	// Handlers
	CallsHandler callsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize metrics
	deps.Registry = prometheus.NewRegistry()
	metrics.MustRegister(deps.Registry)

	// Initialize clients
	twilioClient := twilioclient.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.PhoneNumber,
		logger,
	)
	chatClient := openaiclient.NewChatClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)

	// The turn callback URL Twilio will invoke; the status callback URL is
	// derived from it by path substitution.
	webhookURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/webhook/"

	callProcessor := callsProcessor.New(&deps.Store, twilioClient, chatClient, webhookURL, logger)
	deps.CallsHandler = callsHandler.New(callProcessor, logger)

	return deps, nil
}

// Cleanup releases held resources.
func (d *Dependencies) Cleanup() {
	if db := d.Store.DB(); db != nil {
		_ = db.Close()
	}
}
