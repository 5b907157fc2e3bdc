package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/app"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/cache"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/config"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/database"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/events"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/logger"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/telemetry"
	inventoryEvents "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		inventoryEvents.TopicMovementRecorded: handleMovementRecorded(a),
		inventoryEvents.TopicAlertRaised:      handleAlertRaised(a),
		inventoryEvents.TopicAlertResolved:    handleAlertResolved(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleMovementRecorded returns a handler for inventory.movement.recorded events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops the item's Redis read-model entry so the next read repopulates it with
// the post-movement quantity.
func handleMovementRecorded(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.MovementRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Delete(ctx, evt.ItemID); err != nil {
			// Cache invalidation is best-effort; the entry expires via TTL anyway.
			a.Logger.WarnContext(ctx, "cache invalidation failed for movement",
				"item_id", evt.ItemID, "error", err)
		}

		a.Logger.InfoContext(ctx, "movement processed",
			"transaction_id", evt.TransactionID,
			"item_id", evt.ItemID,
			"type", evt.Type,
			"new_quantity", evt.NewQuantity,
		)
		return nil
	}
}

// handleAlertRaised surfaces raised alerts in the logs, where operations
// dashboards and Sentry alerting pick them up.
func handleAlertRaised(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.AlertRaisedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.WarnContext(ctx, "low stock alert raised",
			"alert_id", evt.AlertID,
			"item_id", evt.ItemID,
			"level", evt.Level,
			"current_quantity", evt.CurrentQuantity,
			"min_quantity", evt.MinQuantity,
		)
		return nil
	}
}

func handleAlertResolved(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.AlertResolvedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "low stock alert resolved", "item_id", evt.ItemID)
		return nil
	}
}
