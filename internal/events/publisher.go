package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/aquasales/crm-platform/internal/model"
)

const (
	// StreamName is the name of the engagement event stream.
	StreamName = "ENGAGEMENTS"

	// SubjectPrefix is the prefix for all engagement subjects.
	SubjectPrefix = "crm"
)

// Publisher handles JetStream stream setup and event publishing.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher over an established client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// EnsureStream ensures the engagement stream exists.
func (p *Publisher) EnsureStream(ctx context.Context) error {
	js := p.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      90 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Engagement turn messages and events",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// MessageSubject returns the subject for a conversation message.
func MessageSubject(leadID string, role model.MessageRole) string {
	return fmt.Sprintf("%s.engagement.%s.msg.%s", SubjectPrefix, leadID, role)
}

// EventSubject returns the subject for an engagement event.
func EventSubject(leadID string, eventType model.EventType) string {
	return fmt.Sprintf("%s.engagement.%s.event.%s", SubjectPrefix, leadID, eventType)
}

// PublishMessage publishes one conversation message.
func (p *Publisher) PublishMessage(ctx context.Context, leadID string, msg model.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := p.client.JetStream().Publish(ctx, MessageSubject(leadID, msg.Role), data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishEvent publishes an engagement event.
func (p *Publisher) PublishEvent(ctx context.Context, event *model.EngagementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.client.JetStream().Publish(ctx, EventSubject(event.LeadID, event.Type), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
