// Package events defines the payloads published through the outbox. Every
// consumer shares these shapes, so fields are only ever added, never renamed.
package events

import "time"

const (
	EmployeeCreatedTopic = "employee.created"
	HourLogDecidedTopic  = "hourlog.decided"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// HourLogDecidedEvent is emitted when a pending hour log is approved or
// rejected.
type HourLogDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	HourLogID  string    `json:"hour_log_id"`
	EmployeeID string    `json:"employee_id"`
	ApproverID string    `json:"approver_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
