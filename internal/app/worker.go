package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

// eventHandler возвращает обработчик событий для воркера.
// Без архива событие только логируется.
func eventHandler(archive ports.EventArchive, logger *slog.Logger) func(context.Context, payloads.EntityEvent) error {
	return func(ctx context.Context, event payloads.EntityEvent) error {
		logger.Info("entity event received",
			"event_id", event.EventID,
			"entity", event.Entity,
			"action", event.Action,
			"entity_id", event.EntityID,
		)
		if archive == nil {
			return nil
		}

		key, err := archive.ArchiveEvent(ctx, event)
		if err != nil {
			return fmt.Errorf("archive event %s: %w", event.EventID, err)
		}
		logger.Info("entity event archived", "event_id", event.EventID, "key", key)
		return nil
	}
}

// runWorker запускает потребителя RabbitMQ и ждёт отмены ctx.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	consumer ports.EntityEventConsumer,
	archive ports.EventArchive,
) error {
	if consumer == nil {
		return errors.New("worker mode requires RABBITMQ_URL")
	}

	if err := consumer.StartConsumingEntityEvents(ctx, eventHandler(archive, logger)); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}
	logger.Info("worker started, waiting for entity events")

	<-ctx.Done()
	logger.Info("worker stopped")
	return nil
}
