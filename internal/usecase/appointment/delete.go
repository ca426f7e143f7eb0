package appointment

import (
	"context"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier Notifier,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
	}
}

// Execute remove o agendamento. Primeiro solta o lembrete pendente, para
// não notificar um registro que já foi embora. Id inexistente é no-op.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	accountID string,
	appointmentID string,
) error {

	uc.notifier.CancelReminder(appointmentID)

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &accountID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &appointmentID,
	})

	return nil
}
