package models

import "time"

// User roles as the backend reports them.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User mirrors the backend user record.
type User struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone_number"`
	Role           string    `json:"role"` // admin | operator
	OrganizationID ID        `json:"organization_id,omitempty"`
	State          string    `json:"state,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserPayload is the form shape submitted on create/update.
type UserPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone_number"`
	Role           string `json:"role"`
	OrganizationID ID     `json:"organization_id,omitempty"`
	State          string `json:"state,omitempty"`
	Password       string `json:"password,omitempty"`
}
