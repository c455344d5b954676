package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		errors map[string][]string
		want   string
	}{
		{
			name:   "fields sorted, messages comma joined",
			errors: map[string][]string{"name": {"is required"}, "amount": {"must be positive"}},
			want:   "amount: must be positive, name: is required",
		},
		{
			name:   "multiple messages per field",
			errors: map[string][]string{"phone": {"is required", "must be numeric"}},
			want:   "phone: is required, phone: must be numeric",
		},
		{
			name: "empty map falls back",
			want: "validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenFieldErrors(tt.errors))
		})
	}
}

func TestServerErrorGenericFallback(t *testing.T) {
	err := NewServerError("", 500)
	assert.Equal(t, GenericMessage, err.Message)
	assert.True(t, err.Retryable)

	err = NewServerError("explicit message", 400)
	assert.Equal(t, "explicit message", err.Message)
	assert.False(t, err.Retryable)
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNoToken(NewNoTokenError()))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("")))
	assert.True(t, IsValidation(NewValidationError(nil)))
	assert.True(t, IsNotFound(NewNotFoundError("invoices", "3")))
	assert.Equal(t, ErrorCode("UNKNOWN_ERROR"), Code(fmt.Errorf("plain")))
}

func TestConvert(t *testing.T) {
	std := NewNoTokenError()
	assert.Same(t, std, Convert(std))

	wrapped := Convert(fmt.Errorf("boom"))
	assert.Equal(t, GenericMessage, wrapped.Message)
	assert.Equal(t, "boom", wrapped.Details)
}

func TestNoTokenMessage(t *testing.T) {
	assert.Equal(t, "no token found", NewNoTokenError().Message)
}
