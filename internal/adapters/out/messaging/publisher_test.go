package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("one message per event keyed by order id", func(t *testing.T) {
		writer := &mockWriter{}
		var written []kafka.Message
		writer.On("WriteMessages", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		publisher := NewKafkaPublisher(writer)
		publisher.now = func() time.Time { return fixed }

		err := publisher.Publish(ctx,
			order.Registered{ID: 12, ConsumerID: 1, RestaurantID: 3, Total: 2500, ItemCount: 2},
			order.DeliveryStatusChanged{ID: 12, ConsumerID: 1, Delivered: true},
		)
		require.NoError(t, err)
		require.Len(t, written, 2)

		assert.Equal(t, "12", string(written[0].Key))
		assert.Equal(t, []byte(order.EventRegistered), written[0].Headers[0].Value)

		var envelope struct {
			EventID    string          `json:"event_id"`
			EventType  string          `json:"event_type"`
			OrderID    int64           `json:"order_id"`
			OccurredAt time.Time       `json:"occurred_at"`
			Payload    json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(written[0].Value, &envelope))
		_, err = uuid.Parse(envelope.EventID)
		assert.NoError(t, err)
		assert.Equal(t, order.EventRegistered, envelope.EventType)
		assert.Equal(t, int64(12), envelope.OrderID)
		assert.True(t, fixed.Equal(envelope.OccurredAt))
		assert.JSONEq(t,
			`{"order_id":12,"consumer_id":1,"restaurant_id":3,"total":2500,"item_count":2}`,
			string(envelope.Payload))

		require.NoError(t, json.Unmarshal(written[1].Value, &envelope))
		assert.JSONEq(t, `{"order_id":12,"consumer_id":1,"delivered":true}`, string(envelope.Payload))
		writer.AssertExpectations(t)
	})

	t.Run("no events writes nothing", func(t *testing.T) {
		writer := &mockWriter{}
		require.NoError(t, NewKafkaPublisher(writer).Publish(ctx))
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("writer error", func(t *testing.T) {
		writer := &mockWriter{}
		writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("leader not available")).Once()

		err := NewKafkaPublisher(writer).Publish(ctx, order.DeliveryStatusChanged{ID: 1, ConsumerID: 1})
		assert.ErrorContains(t, err, "leader not available")
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, publisher.Publish(t.Context(), order.Registered{ID: 5}))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, order.EventRegistered, entry["event_type"])
	assert.InDelta(t, 5, entry["order_id"], 0)
	assert.Equal(t, "event_publisher", entry["component"])
}
