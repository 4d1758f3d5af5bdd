package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EventEmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}
