package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderEvent(t *testing.T) {
	deliverer := kernel.NewUUID()
	e := order.StatusChanged{
		OrderID:     kernel.NewUUID(),
		OrderNumber: "123456",
		StoreID:     kernel.NewUUID(),
		ClientID:    kernel.NewUUID(),
		DelivererID: &deliverer,
		From:        order.Ready,
		To:          order.Delivering,
		Role:        kernel.RoleDeliverer,
		OccurredAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	msg, err := outbox.FromOrderEvent("order.status.changed", e)

	require.NoError(t, err)
	require.NoError(t, msg.Validate())
	assert.Equal(t, e.OrderID.String(), msg.Key)
	assert.False(t, msg.IsPublished())

	var payload outbox.OrderStatusChangedPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "ready", payload.From)
	assert.Equal(t, "delivering", payload.To)
	assert.Equal(t, "deliverer", payload.Role)
	require.NotNil(t, payload.DelivererID)
	assert.Equal(t, deliverer.String(), *payload.DelivererID)
}

func TestNewMessage_RequiresTopic(t *testing.T) {
	_, err := outbox.NewMessage("", "k", map[string]string{}, time.Now())
	require.Error(t, err)
}
