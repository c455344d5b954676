package models

import "time"

// Notification broadcast scopes.
const (
	NotifyAdmin    = "admin"
	NotifyState    = "state"
	NotifyPersonal = "personal"
)

// Notification mirrors the backend notification record.
type Notification struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"` // admin | state | personal
	Delivered   bool      `json:"delivered"`
	SenderID    ID        `json:"sender_id,omitempty"`
	RecipientID ID        `json:"recipient_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Activity is one entry of the user activity feed.
type Activity struct {
	ID        ID        `json:"id"`
	UserID    ID        `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
