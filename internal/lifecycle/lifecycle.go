package lifecycle

import (
	"context"
	"errors"

	"github.com/looplab/fsm"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
)

var ErrInvalidTransition = errors.New("invalid tenant status transition")

// Events accepted by the tenant status machine.
const (
	EventActivate   = "activate"
	EventSuspend    = "suspend"
	EventResume     = "resume"
	EventDeactivate = "deactivate"
)

// Transition applies an event to the current status and returns the
// resulting status. Tenants are never hard-deleted; `inactive` is terminal.
//
//	trial ──activate──▶ active ──suspend──▶ suspended ──resume──▶ active
//	trial ──suspend──▶ suspended
//	active|suspended ──deactivate──▶ inactive
func Transition(ctx context.Context, current model.TenantStatus, event string) (model.TenantStatus, error) {
	machine := fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: EventActivate, Src: []string{string(model.TenantStatusTrial)}, Dst: string(model.TenantStatusActive)},
			{Name: EventSuspend, Src: []string{
				string(model.TenantStatusTrial),
				string(model.TenantStatusActive),
			}, Dst: string(model.TenantStatusSuspended)},
			{Name: EventResume, Src: []string{string(model.TenantStatusSuspended)}, Dst: string(model.TenantStatusActive)},
			{Name: EventDeactivate, Src: []string{
				string(model.TenantStatusActive),
				string(model.TenantStatusSuspended),
			}, Dst: string(model.TenantStatusInactive)},
		},
		fsm.Callbacks{},
	)

	err := machine.Event(ctx, event)
	if err != nil {
		return current, errs.Wrapf(ErrInvalidTransition, "event %q from status %q", event, current)
	}

	return model.TenantStatus(machine.Current()), nil
}
