package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

// NopEventPublisher используется, когда брокер не настроен.
type NopEventPublisher struct{}

func (NopEventPublisher) PublishEntityEvent(context.Context, payloads.EntityEvent) error { return nil }

// publish отправляет событие после коммита. Ошибка брокера не влияет на ответ клиенту.
func publish(ctx context.Context, events ports.EntityEventPublisher, logger *slog.Logger, event payloads.EntityEvent) {
	if err := events.PublishEntityEvent(ctx, event); err != nil {
		logger.Warn("failed to publish entity event",
			"entity", event.Entity,
			"action", event.Action,
			"entity_id", event.EntityID,
			"error", err,
		)
	}
}
