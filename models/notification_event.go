package models

import "time"

const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// NotificationEvent is one advisory webhook delivery waiting in the outbox.
// Rows are written in the same request that performs the primary mutation
// and drained by the background dispatcher; delivery is best-effort and
// never blocks or rolls back the mutation that enqueued it.
type NotificationEvent struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Action    string     `gorm:"type:varchar(50);not null" json:"action"`
	Payload   string     `gorm:"type:text;not null" json:"payload"` // JSON object of form fields
	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Attempts  int        `gorm:"not null;default:0" json:"attempts"`
	LastError string     `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

func (NotificationEvent) TableName() string {
	return "notification_events"
}
