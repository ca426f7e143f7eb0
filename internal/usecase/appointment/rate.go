package appointment

import (
	"context"
	"time"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type RateAppointmentInput struct {
	AccountID     string
	AppointmentID string
	Score         int
	Comment       string
}

type RateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	opts  Options
}

func NewRateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	opts Options,
) *RateAppointment {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &RateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		opts:  opts,
	}
}

func (uc *RateAppointment) Execute(
	ctx context.Context,
	in RateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.opts.Location)
	if err := domain.Rate(ap, in.Score, in.Comment, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &in.AccountID,
		Action:    "appointment_rated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
