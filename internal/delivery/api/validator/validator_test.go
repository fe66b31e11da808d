package validator

import (
	"testing"

	domainerrors "novelhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Novel   string `validate:"required"`
	Chapter int    `validate:"gt=0"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Novel: "moon", Chapter: 1}))

	err := v.Validate(&sampleRequest{Chapter: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "Novel: required")
	assert.Contains(t, appErr.Details(), "Chapter: gt=0")
}
