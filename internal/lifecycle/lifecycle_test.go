package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/lifecycle"
	"github.com/agenthub/hub/internal/model"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current model.TenantStatus
		event   string
		want    model.TenantStatus
		wantErr bool
	}{
		{name: "TrialActivate", current: model.TenantStatusTrial, event: lifecycle.EventActivate, want: model.TenantStatusActive},
		{name: "TrialSuspend", current: model.TenantStatusTrial, event: lifecycle.EventSuspend, want: model.TenantStatusSuspended},
		{name: "ActiveSuspend", current: model.TenantStatusActive, event: lifecycle.EventSuspend, want: model.TenantStatusSuspended},
		{name: "SuspendedResume", current: model.TenantStatusSuspended, event: lifecycle.EventResume, want: model.TenantStatusActive},
		{name: "ActiveDeactivate", current: model.TenantStatusActive, event: lifecycle.EventDeactivate, want: model.TenantStatusInactive},
		{name: "SuspendedDeactivate", current: model.TenantStatusSuspended, event: lifecycle.EventDeactivate, want: model.TenantStatusInactive},
		{name: "TrialResume", current: model.TenantStatusTrial, event: lifecycle.EventResume, wantErr: true},
		{name: "TrialDeactivate", current: model.TenantStatusTrial, event: lifecycle.EventDeactivate, wantErr: true},
		{name: "ActiveActivate", current: model.TenantStatusActive, event: lifecycle.EventActivate, wantErr: true},
		{name: "InactiveResume", current: model.TenantStatusInactive, event: lifecycle.EventResume, wantErr: true},
		{name: "InactiveActivate", current: model.TenantStatusInactive, event: lifecycle.EventActivate, wantErr: true},
		{name: "UnknownEvent", current: model.TenantStatusActive, event: "archive", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lifecycle.Transition(t.Context(), tt.current, tt.event)

			if tt.wantErr {
				assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
				assert.Equal(t, tt.current, got, "failed transitions must not move the status")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
