package payloads

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityUser = "user"
	EntityAd   = "ad"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent - сообщение об изменении сущности, которое уходит в RabbitMQ.
type EntityEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEntityEvent заполняет идентификатор и время события.
func NewEntityEvent(entity, action string, id int64) EntityEvent {
	return EntityEvent{
		EventID:    uuid.New(),
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
}
