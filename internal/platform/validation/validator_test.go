package validation

import (
	"errors"
	"testing"

	"animal-shelter/internal/platform/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string  `json:"username" validate:"required,min=3,max=150,username"`
	Phone    *string `json:"phone_number" validate:"omitempty,e164"`
	Gender   string  `json:"gender" validate:"omitempty,oneof=boy girl unknown"`
}

func TestStruct_OK(t *testing.T) {
	phone := "+380933456789"
	assert.NoError(t, Struct(sample{Username: "test.user", Phone: &phone, Gender: "girl"}))
}

func TestStruct_ReportsJSONFieldName(t *testing.T) {
	phone := "invalid_phone"
	err := Struct(sample{Username: "testuser", Phone: &phone})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)

	var ae *apperror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "phone_number", ae.Field)
}

func TestStruct_UsernameRule(t *testing.T) {
	err := Struct(sample{Username: "bad name!"})
	require.Error(t, err)

	var ae *apperror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "username", ae.Field)
	assert.Contains(t, ae.Message, "letters")
}
