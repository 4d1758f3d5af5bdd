package events

import "time"

const RequestLifecycleTopic = "hr.request.lifecycle.v1"

const (
	EventRequestCreated   = "request_created"
	EventRequestResponded = "request_responded"
)

// RequestLifecycleEvent is published when a request is raised or answered.
type RequestLifecycleEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id"`
	TraceID         string    `json:"trace_id,omitempty"`
	EmployeeID      string    `json:"employee_id"`
	ActorID         string    `json:"actor_id"`
	RequestTypeCode int       `json:"request_type_code"`
	Status          string    `json:"status"`
	Reply           string    `json:"reply,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
