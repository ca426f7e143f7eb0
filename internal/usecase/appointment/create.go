package appointment

import (
	"context"
	"time"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	AccountID string

	ClientID  string
	BarberID  string
	ServiceID string

	Date  string
	Time  string
	Notes string
}

// Options carrega as regras da barbearia (loja única).
type Options struct {
	Location          *time.Location
	MinAdvanceMinutes int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	opts     Options
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier Notifier,
	opts Options,
) *CreateAppointment {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.MinAdvanceMinutes <= 0 {
		opts.MinAdvanceMinutes = 120
	}
	return &CreateAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		opts:     opts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.opts.Location,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := time.Now().In(uc.opts.Location)
	if start.Before(now.Add(time.Duration(uc.opts.MinAdvanceMinutes) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Available {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !barber.OffersService(service.ID) {
		return nil, httperr.ErrBusiness("service_not_offered")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	ok, err := uc.repo.IsWithinWorkingHours(ctx, in.BarberID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.BarberID, start, end); err != nil {
		return nil, err
	}

	// Nomes denormalizados no momento da criação
	ap := &models.Appointment{
		ClientID:    client.ID,
		ClientName:  client.Name,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		History: []models.StatusHistory{
			domain.NewHistoryEntry("", domain.InitialStatus(), "Agendamento criado", now),
		},
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyCreated(ap)
	uc.notifier.ScheduleReminder(ap)

	uc.audit.Dispatch(audit.Event{
		AccountID: &in.AccountID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
