package appointment

import "github.com/barbearia-app/barbearia-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal: concluído, cancelado e não compareceu não voltam atrás.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transições
// ===============================

var allowedNext = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// CanTransition valida a mudança de status pedida
func CanTransition(current, target Status) error {
	if !IsValid(target) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_transition")
	}
	for _, next := range allowedNext[current] {
		if next == target {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
