package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "object not found",
			err:      errs.NewObjectNotFoundError("order", "42"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 42",
		},
		{
			name:     "object not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "42", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: order, ID is: 42 (cause: connection reset)",
		},
		{
			name:     "value is invalid",
			err:      errs.NewValueIsInvalidError("order number"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: order number",
		},
		{
			name:     "value is out of range",
			err:      errs.NewValueIsOutOfRangeError("latitude", 95.5, -90, 90),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 95.5 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "value is required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("client", cause),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: client (cause: connection reset)",
		},
		{
			name:     "version is invalid",
			err:      errs.NewVersionIsInvalidError("order", errors.New("stale row")),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: order (cause: stale row)",
		},
		{
			name:     "transition is invalid",
			err:      errs.NewTransitionIsInvalidError("preparing", "delivering", "store"),
			sentinel: errs.ErrTransitionIsInvalid,
			want:     "transition is invalid: preparing -> delivering is not allowed for store",
		},
		{
			name:     "object is already assigned",
			err:      errs.NewObjectIsAlreadyAssignedError("order", "42"),
			sentinel: errs.ErrObjectIsAlreadyAssigned,
			want:     "object is already assigned: param is: order, ID is: 42",
		},
		{
			name:     "object is not eligible",
			err:      errs.NewObjectIsNotEligibleError("deliverer", "7", "deliverer is offline"),
			sentinel: errs.ErrObjectIsNotEligible,
			want:     "object is not eligible: param is: deliverer, ID is: 7, reason is: deliverer is offline",
		},
		{
			name:     "state is invalid",
			err:      errs.NewStateIsInvalidError("delivery request", "accepted"),
			sentinel: errs.ErrStateIsInvalid,
			want:     "state is invalid: delivery request is accepted",
		},
		{
			name:     "state is invalid with cause",
			err:      errs.NewStateIsInvalidErrorWithCause("order", "delivered", errors.New("terminal")),
			sentinel: errs.ErrStateIsInvalid,
			want:     "state is invalid: order is delivered (cause: terminal)",
		},
		{
			name:     "action is forbidden",
			err:      errs.NewActionIsForbiddenError("client", "change order status"),
			sentinel: errs.ErrActionIsForbidden,
			want:     "action is forbidden: client cannot change order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrorMessagesAreSingleLine(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("address", errors.New("line one\nline two\r\nline three"))

	assert.Equal(t, "value is invalid: address (cause: line one line two line three)", err.Error())
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := errors.Join(
		errs.NewValueIsRequiredError("pickup address"),
		errs.NewValueIsOutOfRangeError("radius", -1, 0, 50),
	)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var outOfRange *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, wrapped, &outOfRange)
	assert.Equal(t, "radius", outOfRange.ParamName)
	assert.Equal(t, 50, outOfRange.Max)
}

func TestActionIsForbiddenError_Fields(t *testing.T) {
	var err error = errs.NewActionIsForbiddenError("deliverer", "place orders")

	var forbidden *errs.ActionIsForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "deliverer", forbidden.Role)
	assert.Equal(t, "place orders", forbidden.Action)
}

func TestVersionIsInvalidErrorWithCause_HasNoCause(t *testing.T) {
	err := errs.NewVersionIsInvalidErrorWithCause("deliverer")

	require.NoError(t, err.Cause)
	assert.Equal(t, "version is invalid: deliverer", err.Error())
}
