package minio

import (
	"context"
	"testing"
	"time"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventKey(t *testing.T) {
	event := payloads.EntityEvent{
		EventID:    uuid.MustParse("6f1c1f3e-9d7a-4a57-8c34-1f1b3b8f7e21"),
		Entity:     payloads.EntityAd,
		Action:     payloads.ActionUpdated,
		EntityID:   3,
		OccurredAt: time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)),
	}

	assert.Equal(t, "events/ad/2024/03/09/6f1c1f3e-9d7a-4a57-8c34-1f1b3b8f7e21.json", EventKey(event))
}

func TestNewMinioClient_RequiresCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Minio.Endpoint = "localhost:9000"

	_, err := NewMinioClient(context.Background(), cfg, logger.Discard())
	assert.Error(t, err)
}
