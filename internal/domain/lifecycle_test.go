package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestValidateTransition(t *testing.T) {
	reason := strPtr("клиент заболел")

	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		reason  *string
		wantErr error
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, nil, nil},
		{"confirmed to pending", StatusConfirmed, StatusPending, nil, nil},
		{"pending to completed", StatusPending, StatusCompleted, nil, nil},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, nil, nil},
		{"pending to cancelled with reason", StatusPending, StatusCancelled, reason, nil},
		{"confirmed to cancelled with reason", StatusConfirmed, StatusCancelled, reason, nil},

		{"completed to pending", StatusCompleted, StatusPending, nil, ErrCompletedImmutable},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, nil, ErrCompletedImmutable},
		{"completed to cancelled", StatusCompleted, StatusCancelled, reason, ErrCompletedImmutable},

		{"cancelled to pending is reactivation", StatusCancelled, StatusPending, nil, nil},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, nil, ErrCancelledReactivationOnly},
		{"cancelled to completed", StatusCancelled, StatusCompleted, nil, ErrCancelledReactivationOnly},

		{"cancel without reason", StatusPending, StatusCancelled, nil, ErrCancellationReasonRequired},
		{"cancel with blank reason", StatusPending, StatusCancelled, strPtr("  "), ErrCancellationReasonRequired},

		{"unknown status", StatusPending, AppointmentStatus("archived"), nil, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			err := ValidateTransition(a, tt.to, tt.reason)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDelete(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		assert.NoError(t, ValidateDelete(&Appointment{Status: status}))
	}

	err := ValidateDelete(&Appointment{Status: StatusCompleted})
	assert.ErrorIs(t, err, ErrCompletedImmutable)
}

func TestAppointment_StatusPredicates(t *testing.T) {
	tests := []struct {
		status        AppointmentStatus
		active        bool
		canCancel     bool
		canReschedule bool
	}{
		{StatusPending, true, true, true},
		{StatusConfirmed, true, true, true},
		{StatusCompleted, false, false, false},
		{StatusCancelled, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, tt.canCancel, a.CanBeCancelled())
			assert.Equal(t, tt.canReschedule, a.CanBeRescheduled())
		})
	}
}
