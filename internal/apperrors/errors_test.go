package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
)

func TestCloneKeepsCode(t *testing.T) {
	err := apperrors.Clone(apperrors.ErrValidation, "difficulty must be a number between 1 and 5")
	assert.Equal(t, "difficulty must be a number between 1 and 5", err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "validation failed", apperrors.ErrValidation.Message, "original must not change")
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := apperrors.Wrap(cause, apperrors.ErrPersistence.Code, "save failed")
	assert.Equal(t, "save failed: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("outer: %w", err), apperrors.ErrPersistence)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, apperrors.FromError(nil))

	typed := apperrors.Clone(apperrors.ErrConflict, "dup")
	assert.Same(t, typed, apperrors.FromError(fmt.Errorf("ctx: %w", typed)))

	plain := apperrors.FromError(errors.New("boom"))
	assert.Equal(t, apperrors.ErrInternal.Code, plain.Code)
}

func TestIsUserError(t *testing.T) {
	assert.True(t, apperrors.IsUserError(apperrors.Clone(apperrors.ErrNoSubjects, "")))
	assert.True(t, apperrors.IsUserError(apperrors.ErrWindowTooShort))
	assert.False(t, apperrors.IsUserError(apperrors.ErrPersistence))
	assert.False(t, apperrors.IsUserError(errors.New("other")))
}
