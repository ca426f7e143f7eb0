package appointment

import (
	"context"
	"time"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type TransitionAppointmentInput struct {
	AccountID     string
	AppointmentID string
	Target        domain.Status
	Note          string
}

type TransitionAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	opts     Options
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier Notifier,
	opts Options,
) *TransitionAppointment {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &TransitionAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		opts:     opts,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.opts.Location)
	if err := domain.Transition(ap, in.Target, in.Note, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyStatusChanged(ap, string(in.Target))

	// Estado terminal não precisa mais de lembrete
	if domain.IsTerminal(in.Target) {
		uc.notifier.CancelReminder(ap.ID)
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &in.AccountID,
		Action:    "appointment_status_" + string(in.Target),
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
