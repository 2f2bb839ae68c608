package withdrawal_test

import (
	"testing"

	"backoffice/internal/core/domain/model/withdrawal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  withdrawal.Status
		wantErr bool
	}{
		{"pending is valid", withdrawal.StatusPending, false},
		{"approved is valid", withdrawal.StatusApproved, false},
		{"rejected is valid", withdrawal.StatusRejected, false},
		{"processed is valid", withdrawal.StatusProcessed, false},
		{"unknown is invalid", withdrawal.StatusUnknown, true},
		{"out of range is invalid", withdrawal.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal edges", func(t *testing.T) {
		edges := []struct {
			from, to withdrawal.Status
		}{
			{withdrawal.StatusPending, withdrawal.StatusApproved},
			{withdrawal.StatusPending, withdrawal.StatusRejected},
			{withdrawal.StatusApproved, withdrawal.StatusProcessed},
		}

		for _, e := range edges {
			got, err := e.from.TransitionTo(e.to)
			require.NoError(t, err)
			assert.Equal(t, e.to, got)
		}
	})

	t.Run("illegal edges", func(t *testing.T) {
		edges := []struct {
			from, to withdrawal.Status
		}{
			{withdrawal.StatusPending, withdrawal.StatusProcessed},
			{withdrawal.StatusApproved, withdrawal.StatusRejected},
			{withdrawal.StatusApproved, withdrawal.StatusPending},
			{withdrawal.StatusRejected, withdrawal.StatusApproved},
			{withdrawal.StatusRejected, withdrawal.StatusPending},
			{withdrawal.StatusProcessed, withdrawal.StatusApproved},
		}

		for _, e := range edges {
			_, err := e.from.TransitionTo(e.to)
			require.ErrorIs(t, err, withdrawal.ErrInvalidTransition)
		}
	})
}

func TestStatus_CountsTowardCommitted(t *testing.T) {
	assert.True(t, withdrawal.StatusPending.CountsTowardCommitted())
	assert.True(t, withdrawal.StatusApproved.CountsTowardCommitted())
	assert.True(t, withdrawal.StatusProcessed.CountsTowardCommitted())
	assert.False(t, withdrawal.StatusRejected.CountsTowardCommitted())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", withdrawal.StatusPending.String())
	assert.Equal(t, "Approved", withdrawal.StatusApproved.String())
	assert.Equal(t, "Rejected", withdrawal.StatusRejected.String())
	assert.Equal(t, "Processed", withdrawal.StatusProcessed.String())
	assert.Equal(t, "Unknown", withdrawal.Status(42).String())
}
