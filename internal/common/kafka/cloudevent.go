package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CloudEvent is the envelope every event on the wire is wrapped in,
// loosely following the CloudEvents 1.0 attribute names.
type CloudEvent struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	SpecVersion string          `json:"specversion"`
	Type        string          `json:"type"`
	Time        time.Time       `json:"time"`
	Data        json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope with a fresh ID.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:          uuid.NewString(),
		Source:      source,
		SpecVersion: "1.0",
		Type:        eventType,
		Time:        time.Now().UTC(),
		Data:        payload,
	}, nil
}

// ParseCloudEvent decodes a raw message into a CloudEvent envelope.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into out.
func (e CloudEvent) ParseData(out interface{}) error {
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to parse event data: %w", err)
	}
	return nil
}
