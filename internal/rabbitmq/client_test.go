package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked++
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func delivery(t *testing.T, ack amqp.Acknowledger, body []byte) amqp.Delivery {
	t.Helper()
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
}

func TestNewPublishing(t *testing.T) {
	event := payloads.NewEntityEvent(payloads.EntityAd, payloads.ActionCreated, 5)

	msg, err := newPublishing(event)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, event.EventID.String(), msg.MessageId)
	assert.Equal(t, "ad.created", msg.Type)

	var decoded payloads.EntityEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, int64(5), decoded.EntityID)
	assert.WithinDuration(t, event.OccurredAt, decoded.OccurredAt, time.Millisecond)
}

func TestHandleDelivery(t *testing.T) {
	event := payloads.NewEntityEvent(payloads.EntityUser, payloads.ActionDeleted, 1)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("ack on success", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		var got payloads.EntityEvent
		handleDelivery(context.Background(), delivery(t, ack, body), func(_ context.Context, e payloads.EntityEvent) error {
			got = e
			return nil
		}, logger.Discard())

		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.nacked)
		assert.Equal(t, event.EventID, got.EventID)
	})

	t.Run("requeue on handler error", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		handleDelivery(context.Background(), delivery(t, ack, body), func(context.Context, payloads.EntityEvent) error {
			return errors.New("s3 unavailable")
		}, logger.Discard())

		assert.Equal(t, 0, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.True(t, ack.requeue)
	})

	t.Run("drop malformed body", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		called := false
		handleDelivery(context.Background(), delivery(t, ack, []byte("{not json")), func(context.Context, payloads.EntityEvent) error {
			called = true
			return nil
		}, logger.Discard())

		assert.False(t, called)
		assert.Equal(t, 1, ack.nacked)
		assert.False(t, ack.requeue)
	})
}
