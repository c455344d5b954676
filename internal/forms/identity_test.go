package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/models"
)

func sampleConfigs() []models.IdentityConfig {
	return []models.IdentityConfig{
		{Name: "nin", Label: "National ID Number", Type: models.FieldNumber, Required: true, Active: true, SortOrder: 1},
		{Name: "email", Label: "Email", Type: models.FieldEmail, Required: false, Active: true, SortOrder: 2},
		{Name: "old_field", Label: "Retired", Type: models.FieldText, Required: true, Active: false, SortOrder: 3},
	}
}

func TestValidateIdentityInput(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]interface{}
		wantErr string
	}{
		{
			name:  "valid submission",
			input: map[string]interface{}{"nin": 12345678901.0, "email": "a@example.com"},
		},
		{
			name:  "optional field omitted",
			input: map[string]interface{}{"nin": 12345678901.0},
		},
		{
			name:    "required field missing",
			input:   map[string]interface{}{"email": "a@example.com"},
			wantErr: "nin",
		},
		{
			name:    "wrong type",
			input:   map[string]interface{}{"nin": "not-a-number"},
			wantErr: "nin",
		},
		{
			name:    "bad email format",
			input:   map[string]interface{}{"nin": 1.0, "email": "nope"},
			wantErr: "email",
		},
		{
			name:    "unknown field rejected",
			input:   map[string]interface{}{"nin": 1.0, "extra": "x"},
			wantErr: "extra",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentityInput(sampleConfigs(), tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInactiveConfigsExcludedFromSchema(t *testing.T) {
	// old_field is required but inactive, so omitting it is fine.
	err := ValidateIdentityInput(sampleConfigs(), map[string]interface{}{"nin": 1.0})
	assert.NoError(t, err)
}

func TestBuildIdentitySchemaUnknownType(t *testing.T) {
	_, err := BuildIdentitySchema([]models.IdentityConfig{
		{Name: "x", Type: "dropdown", Active: true},
	})
	assert.Error(t, err)
}

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr bool
	}{
		{"valid", LoginForm{Phone: "+2348012345678", Password: "secret"}, false},
		{"missing phone", LoginForm{Password: "secret"}, true},
		{"short phone", LoginForm{Phone: "12345", Password: "secret"}, true},
		{"missing password", LoginForm{Phone: "+2348012345678"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationFormValidate(t *testing.T) {
	valid := NotificationForm{Title: "Downtime", Message: "Planned maintenance", Type: "admin"}
	assert.NoError(t, valid.Validate())

	missing := NotificationForm{Type: "admin"}
	assert.Error(t, missing.Validate())

	badType := NotificationForm{Title: "t", Message: "m", Type: "everyone"}
	assert.Error(t, badType.Validate())

	stateWithoutTarget := NotificationForm{Title: "t", Message: "m", Type: "state"}
	assert.Error(t, stateWithoutTarget.Validate())

	personalWithTarget := NotificationForm{Title: "t", Message: "m", Type: "personal", UserID: "5"}
	assert.NoError(t, personalWithTarget.Validate())
}
