package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"firstName" validate:"notblank"`
	Severity int     `json:"severity" validate:"min=1,max=10"`
	Kind     string  `json:"kind" validate:"oneof=daily weekly monthly"`
	Time     *string `json:"timeOfDay,omitempty" validate:"omitempty,datetime=15:04"`
}

func valid() sample {
	return sample{Email: "a@b.co", Password: "secret", Name: "Ann", Severity: 5, Kind: "daily"}
}

func TestStruct_Valid(t *testing.T) {
	s := valid()
	assert.NoError(t, Struct(s))
}

func TestStruct_FieldMessagesUseJSONNames(t *testing.T) {
	bad := "25:99"
	s := sample{Email: "nope", Password: "123", Name: "   ", Severity: 11, Kind: "hourly", Time: &bad}

	err := Struct(s)
	require.Error(t, err)

	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "must be a valid email address", ve.Fields["email"])
	assert.Equal(t, "must be at least 6 characters", ve.Fields["password"])
	assert.Equal(t, "is required", ve.Fields["firstName"])
	assert.Equal(t, "must be at most 10", ve.Fields["severity"])
	assert.Equal(t, "must be one of: daily, weekly, monthly", ve.Fields["kind"])
	assert.Equal(t, "must match the format 15:04", ve.Fields["timeOfDay"])
}

func TestError_MessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
}

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", NewError("email", "taken"))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(errors.New("boom")))
}
