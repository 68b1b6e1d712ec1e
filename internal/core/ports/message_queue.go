package ports

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

// EntityEventPublisher публикует события об изменении сущностей.
// Используется usecase-слоем после успешного коммита.
type EntityEventPublisher interface {
	PublishEntityEvent(ctx context.Context, event payloads.EntityEvent) error
}

// EntityEventConsumer используется воркером для получения событий из очереди.
type EntityEventConsumer interface {
	// StartConsumingEntityEvents начинает прослушивание очереди и вызывает handler
	// для каждого сообщения
	StartConsumingEntityEvents(ctx context.Context, handler func(context.Context, payloads.EntityEvent) error) error
}

// EventArchive сохраняет обработанные события во внешнее хранилище.
type EventArchive interface {
	ArchiveEvent(ctx context.Context, event payloads.EntityEvent) (string, error)
}
