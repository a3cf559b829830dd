package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Message is an event waiting in the outbox table to be relayed to the broker.
type Message struct {
	ID          kernel.UUID
	Topic       string
	Key         string
	Payload     json.RawMessage
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// NewMessage marshals payload into a new unpublished message.
func NewMessage(topic string, key string, payload any, now time.Time) (Message, error) {
	if topic == "" {
		return Message{}, errs.NewValueIsRequiredError("topic")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Message{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return Message{
		ID:        kernel.NewUUID(),
		Topic:     topic,
		Key:       key,
		Payload:   body,
		CreatedAt: now,
	}, nil
}

func (m Message) Validate() error {
	var errList []error
	errList = append(errList, m.ID.Validate())
	if m.Topic == "" {
		errList = append(errList, errs.NewValueIsRequiredError("topic"))
	}
	if !json.Valid(m.Payload) {
		errList = append(errList, errs.NewValueIsInvalidError("payload"))
	}
	return errors.Join(errList...)
}

func (m Message) IsPublished() bool {
	return m.PublishedAt != nil
}
