package notification

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

const channelAppointments = "agendamentos"

type Event struct {
	AppointmentID string
	Title         string
	Message       string
}

// Sink é quem persiste a notificação; em produção é o feed no banco.
type Sink interface {
	Save(record models.Notification) error
}

type gormSink struct {
	db *gorm.DB
}

func (s gormSink) Save(record models.Notification) error {
	return s.db.Create(&record).Error
}

// Notifier grava o feed de notificações do canal "agendamentos" e mantém
// os lembretes pendentes por agendamento. É construído no main e fechado
// no shutdown; nada é configurado em tempo de import.
type Notifier struct {
	store Sink
	log   *zap.Logger

	queue chan Event
	done  chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewNotifier(db *gorm.DB, log *zap.Logger) *Notifier {
	return newNotifier(gormSink{db: db}, log)
}

func newNotifier(store Sink, log *zap.Logger) *Notifier {
	n := &Notifier{
		store:  store,
		log:    log,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}

	go n.worker()
	return n
}

func (n *Notifier) worker() {
	defer close(n.done)

	for ev := range n.queue {
		record := models.Notification{
			AppointmentID: ev.AppointmentID,
			Channel:       channelAppointments,
			Title:         ev.Title,
			Message:       ev.Message,
		}

		if err := n.store.Save(record); err != nil {
			n.log.Error("notification error", zap.Error(err))
		}
	}
}

// Dispatch enfileira sem bloquear. O envio acontece sob o mutex: um
// lembrete que dispara durante o Close vê closed e é descartado em vez
// de mandar em canal fechado.
func (n *Notifier) Dispatch(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		n.log.Warn("notifier closed, dropping event",
			zap.String("appointment_id", ev.AppointmentID))
		return
	}

	select {
	case n.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		n.log.Warn("notification queue full, dropping event",
			zap.String("appointment_id", ev.AppointmentID))
	}
}

// ===============================
// Eventos do ciclo de vida
// ===============================

func (n *Notifier) NotifyCreated(ap *models.Appointment) {
	n.Dispatch(Event{
		AppointmentID: ap.ID,
		Title:         "Novo Agendamento",
		Message: fmt.Sprintf(
			"Agendamento confirmado para %s",
			ap.StartTime.Format("02/01/2006 15:04"),
		),
	})
}

func (n *Notifier) NotifyStatusChanged(ap *models.Appointment, status string) {
	n.Dispatch(Event{
		AppointmentID: ap.ID,
		Title:         "Status do Agendamento Atualizado",
		Message:       fmt.Sprintf("Seu agendamento foi %s", statusLabel(status)),
	})
}

func statusLabel(status string) string {
	switch status {
	case "scheduled":
		return "agendado"
	case "confirmed":
		return "confirmado"
	case "in_progress":
		return "iniciado"
	case "completed":
		return "concluído"
	case "cancelled":
		return "cancelado"
	case "no_show":
		return "marcado como não compareceu"
	}
	return status
}

// Close cancela os lembretes pendentes e drena a fila.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.mu.Unlock()

	close(n.queue)
	<-n.done
}
