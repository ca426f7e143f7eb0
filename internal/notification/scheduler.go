package notification

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

const reminderAdvance = time.Hour

// ReminderAt é o instante do lembrete: uma hora antes do horário marcado.
func ReminderAt(start time.Time) time.Time {
	return start.Add(-reminderAdvance)
}

// ScheduleReminder agenda o lembrete do agendamento. Reagendar para o
// mesmo id substitui o lembrete anterior. Horário já passado não agenda.
func (n *Notifier) ScheduleReminder(ap *models.Appointment) {
	at := ReminderAt(ap.StartTime)
	d := time.Until(at)
	if d <= 0 {
		return
	}

	id := ap.ID
	barberName := ap.BarberName

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	if t, ok := n.timers[id]; ok {
		t.Stop()
	}

	n.timers[id] = time.AfterFunc(d, func() {
		n.mu.Lock()
		delete(n.timers, id)
		n.mu.Unlock()

		n.Dispatch(Event{
			AppointmentID: id,
			Title:         "Lembrete de Agendamento",
			Message: fmt.Sprintf(
				"Você tem um agendamento em 1 hora com %s",
				barberName,
			),
		})
	})

	n.log.Debug("reminder scheduled",
		zap.String("appointment_id", id),
		zap.Time("at", at),
	)
}

// CancelReminder descarta o lembrete pendente do agendamento, se houver.
func (n *Notifier) CancelReminder(appointmentID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if t, ok := n.timers[appointmentID]; ok {
		t.Stop()
		delete(n.timers, appointmentID)
	}
}

// HasPendingReminder existe para inspeção em testes e no shutdown.
func (n *Notifier) HasPendingReminder(appointmentID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, ok := n.timers[appointmentID]
	return ok
}
