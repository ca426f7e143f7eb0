package appointment

import (
	"time"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewHistoryEntry monta uma entrada de histórico. O histórico só cresce:
// entradas antigas nunca são alteradas.
func NewHistoryEntry(appointmentID string, status Status, note string, now time.Time) models.StatusHistory {
	return models.StatusHistory{
		AppointmentID: appointmentID,
		Status:        string(status),
		Note:          note,
		CreatedAt:     now,
	}
}

// Transition aplica a mudança de status e registra no histórico.
func Transition(ap *models.Appointment, target Status, note string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)
	ap.History = append(ap.History, NewHistoryEntry(ap.ID, target, note, now))

	switch target {
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return nil
}

// Rate anexa a avaliação. Só depois de concluído, e só uma vez.
func Rate(ap *models.Appointment, score int, comment string, now time.Time) error {
	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness("not_completed")
	}
	if ap.Rated() {
		return httperr.ErrBusiness("already_rated")
	}
	if score < 1 || score > 5 {
		return httperr.ErrBusiness("invalid_score")
	}

	ap.RatingScore = &score
	ap.RatingComment = comment
	ap.RatedAt = &now
	return nil
}
