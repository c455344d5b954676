package forms

import (
	stderrors "errors"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/validation"
)

// LoginForm carries the credentials submitted to /auth/login.
type LoginForm struct {
	Phone    string `json:"phone_number"`
	Password string `json:"password"`
}

// Validate checks the login form locally before any round trip.
func (f LoginForm) Validate() error {
	var result validation.ValidationResult
	if f.Phone == "" {
		result.Errors = append(result.Errors, validation.ValidationError{
			Field: "phone_number", Message: "required field missing", Code: "REQUIRED_FIELD_MISSING",
		})
	} else if !validation.ValidatePhone(f.Phone) {
		result.Errors = append(result.Errors, validation.ValidationError{
			Field: "phone_number", Message: "must be a valid phone number", Code: "PATTERN_MISMATCH",
		})
	}
	if f.Password == "" {
		result.Errors = append(result.Errors, validation.ValidationError{
			Field: "password", Message: "required field missing", Code: "REQUIRED_FIELD_MISSING",
		})
	}
	if len(result.Errors) == 0 {
		return nil
	}
	return stderrors.New(result.Flatten())
}

// NotificationForm carries a broadcast submission.
type NotificationForm struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	State   string `json:"state,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

var notificationSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"title":   {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(120)},
		"message": {Type: "string", MinLength: intPtr(1)},
		"type":    {Type: "string", Enum: []string{"admin", "state", "personal"}},
		"state":   {Type: "string"},
		"user_id": {Type: "string"},
	},
	Required: []string{"title", "message", "type"},
}

// Validate checks the notification form against its schema plus the
// type-dependent target fields.
func (f NotificationForm) Validate() error {
	input := map[string]interface{}{
		"title":   f.Title,
		"message": f.Message,
		"type":    f.Type,
	}
	if f.State != "" {
		input["state"] = f.State
	}
	if f.UserID != "" {
		input["user_id"] = f.UserID
	}

	result := validation.ValidateInput(input, notificationSchema)
	if !result.Valid {
		return stderrors.New(result.Flatten())
	}
	if f.Type == "state" && f.State == "" {
		return stderrors.New("state: required for state notifications")
	}
	if f.Type == "personal" && f.UserID == "" {
		return stderrors.New("user_id: required for personal notifications")
	}
	return nil
}

func intPtr(n int) *int { return &n }
