package model

import (
	"time"
)

// EventType represents the type of engagement event.
type EventType string

const (
	EventTypeTurnCompleted   EventType = "turn_completed"
	EventTypeProposalSpawned EventType = "proposal_spawned"
	EventTypeError           EventType = "error"
)

// EngagementEvent is published to the event stream when a turn produces
// something downstream consumers care about.
type EngagementEvent struct {
	ID        string         `json:"id"`
	LeadID    string         `json:"lead_id"`
	Type      EventType      `json:"type"`
	Stage     Stage          `json:"stage,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
