// Package service defines the contracts for infrastructure collaborators the
// application layer depends on.
package service

import (
	"context"
)

// ItemChangeEvent describes one quantity transition on an inventory item,
// published by the mutation gateway and consumed by the audit worker.
// EventID doubles as the history document id so redelivery stays idempotent.
type ItemChangeEvent struct {
	RequestID        string `json:"request_id,omitempty"` // For distributed tracing
	EventID          string `json:"event_id"`
	ItemID           string `json:"item_id"`
	OrganizationID   string `json:"organization_id"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
	ChangedBy        string `json:"changed_by,omitempty"` // Acting user id; empty means unknown.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishItemChange publishes an item change event for async audit processing
	PublishItemChange(ctx context.Context, event *ItemChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
