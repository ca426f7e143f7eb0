package notification

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

type memSink struct {
	mu      sync.Mutex
	records []models.Notification
}

func (s *memSink) Save(record models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *memSink) all() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.records...)
}

func TestNotifyCreatedPersistsFeedRow(t *testing.T) {
	sink := &memSink{}
	n := newNotifier(sink, zap.NewNop())

	n.NotifyCreated(&models.Appointment{
		ID:        "ap-1",
		StartTime: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	})
	n.Close()

	records := sink.all()
	require.Len(t, records, 1)
	assert.Equal(t, "ap-1", records[0].AppointmentID)
	assert.Equal(t, channelAppointments, records[0].Channel)
	assert.Equal(t, "Novo Agendamento", records[0].Title)
	assert.Contains(t, records[0].Message, "10/03/2026 15:00")
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &memSink{}
	n := newNotifier(sink, zap.NewNop())
	n.Close()

	// não pode entrar em pânico nem gravar nada
	n.NotifyCreated(&models.Appointment{ID: "ap-1", StartTime: time.Now()})
	n.NotifyStatusChanged(&models.Appointment{ID: "ap-1"}, "cancelled")
	n.Dispatch(Event{AppointmentID: "ap-1"})

	assert.Empty(t, sink.all())
}

// Fecha o notifier enquanto um lembrete prestes a disparar ainda está no
// ar. O callback do timer que perder a corrida descarta o evento em vez
// de mandar em canal fechado.
func TestCloseRacesFiringReminder(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := newNotifier(&memSink{}, zap.NewNop())

		n.ScheduleReminder(&models.Appointment{
			ID:         "ap-1",
			BarberName: "Carlos",
			StartTime:  time.Now().Add(reminderAdvance + 200*time.Microsecond),
		})

		n.Close()
	}
}
