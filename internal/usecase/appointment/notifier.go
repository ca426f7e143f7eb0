package appointment

import "github.com/barbearia-app/barbearia-api/internal/models"

// Notifier é o canal lateral de notificações locais usado pelos casos de
// uso. A implementação real fica em internal/notification.
type Notifier interface {
	NotifyCreated(ap *models.Appointment)
	NotifyStatusChanged(ap *models.Appointment, status string)
	ScheduleReminder(ap *models.Appointment)
	CancelReminder(appointmentID string)
}
