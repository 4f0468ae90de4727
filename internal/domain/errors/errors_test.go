package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails_KeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("quantity must be positive")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.Equal(t, "quantity must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details()) // Sentinel is untouched
}

func TestBaseError_WithDetails_IdentitySurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidStatusTransition.WithDetails("Delivered -> Pending"), "set status")

	assert.ErrorIs(t, wrapped, ErrInvalidStatusTransition)
}

func TestBaseError_Is_DistinctCodesDoNotMatch(t *testing.T) {
	assert.NotErrorIs(t, ErrCartEmpty, ErrCheckoutInFlight)
	assert.NotErrorIs(t, ErrValidationFailed.WithDetails("x"), ErrNotFound)
	assert.NotErrorIs(t, ErrCartEmpty, errors.New("cart empty"))
}

func TestBaseError_WrapMessage_KeepsIdentity(t *testing.T) {
	wrapped := ErrAuthFailed.WrapMessage("sign-up failed")

	assert.ErrorIs(t, wrapped, ErrAuthFailed)
}
