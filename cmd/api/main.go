package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ha-ai-bridge/config"
	_ "ha-ai-bridge/docs" // Swagger docs
	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/assistant/usecase"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/device"
	"ha-ai-bridge/internal/events"
	"ha-ai-bridge/internal/httpserver"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/internal/model"
	"ha-ai-bridge/pkg/homeassistant"
	"ha-ai-bridge/pkg/llmprovider"
	"ha-ai-bridge/pkg/log"
	"ha-ai-bridge/pkg/mqtt"
)

// @title       Home Assistant AI Bridge API
// @description Natural-language control, conversation, image analysis and automation suggestions for Home Assistant.
// @version     1.0.0
// @host        localhost:8099
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting Home Assistant AI Bridge %s...", model.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Home Assistant URL: %s", cfg.HomeAssistant.URL)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Bridge stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Home Assistant
	ha, err := homeassistant.New(homeassistant.Config{
		URL:            cfg.HomeAssistant.URL,
		Token:          cfg.HomeAssistant.Token,
		Timeout:        cfg.HomeAssistant.RequestTimeout,
		CameraCacheTTL: cfg.HomeAssistant.CameraCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("home assistant client: %w", err)
	}
	if err := waitForHomeAssistant(ctx, ha, logger); err != nil {
		logger.Warnf(ctx, "Home Assistant not reachable yet, continuing: %v", err)
	}

	registry := device.NewCache(device.NewHomeAssistantFetcher(ha), logger,
		device.WithFetchTimeout(cfg.HomeAssistant.RequestTimeout))
	invoker := action.NewInvoker(ha, cfg.Assistant.ActionTimeout)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("llm providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)

	intents, err := intent.New(manager, intent.Config{
		Timeout:           cfg.Assistant.InterpretTimeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	}, logger)
	if err != nil {
		return fmt.Errorf("intent client: %w", err)
	}

	// 5. Events (optional)
	publisher := newPublisher(ctx, cfg.MQTT, logger)
	if closer, ok := publisher.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// 6. Assistant use case
	uc := usecase.New(logger, registry, intents, invoker, conversation.NewStore(), ha, publisher, usecase.Config{
		Version:       model.Version,
		HistoryWindow: cfg.Assistant.HistoryWindow,
		CacheMaxAge:   cfg.HomeAssistant.CacheMaxAge,
		Features: assistant.Features{
			VoiceControl:     cfg.Features.Voice,
			Automations:      cfg.Features.Automations,
			ImageRecognition: cfg.Features.ImageRecognition,
		},
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Version:          model.Version,
		AssistantUseCase: uc,
		Platform:         ha,
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}

// mqttResultPublisher keeps the broker connection so it can be closed on shutdown.
type mqttResultPublisher struct {
	assistant.ResultPublisher
	client *mqtt.Client
}

func (p mqttResultPublisher) Close() error { return p.client.Close() }

func newPublisher(ctx context.Context, cfg config.MQTTConfig, logger log.Logger) assistant.ResultPublisher {
	if !cfg.Enabled {
		logger.Info(ctx, "MQTT events disabled")
		return events.NewNop()
	}

	prefix := strings.Trim(cfg.TopicPrefix, "/")
	client, err := mqtt.Connect(mqtt.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		TLS:         cfg.TLS,
		ClientID:    cfg.ClientID,
		Username:    cfg.Username,
		Password:    cfg.Password,
		QoS:         cfg.QoS,
		StatusTopic: prefix + "/status",
	})
	if err != nil {
		logger.Warnf(ctx, "MQTT unavailable, command events disabled: %v", err)
		return events.NewNop()
	}

	logger.Infof(ctx, "MQTT events publishing to %s/command/result", prefix)
	return mqttResultPublisher{
		ResultPublisher: events.NewMQTTPublisher(logger, client, prefix),
		client:          client,
	}
}
