package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

func seedAppointment(repo *mockRepository, id string, start time.Time, status string) {
	repo.appointments[id] = &models.Appointment{
		ID:         id,
		BarberName: "Carlos",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     status,
		Version:    1,
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	repo := newMockRepository()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	seedAppointment(repo, "ap-1", day.Add(9*time.Hour), "scheduled")
	seedAppointment(repo, "ap-2", day.Add(23*time.Hour+30*time.Minute), "completed")
	// dia seguinte, fora da janela
	seedAppointment(repo, "ap-3", day.Add(25*time.Hour), "scheduled")

	uc := NewListAppointmentsByDate(repo, time.UTC)

	list, err := uc.Execute(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{"ap-1", "ap-2"}, ids)
}

// Dia de 25 horas: fim do horário de verão em Nova York (01/11/2026).
// A janela do dia precisa cobrir até a meia-noite seguinte, não só as
// primeiras 24 horas.
func TestListAppointmentsByDateOnDstTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	repo := newMockRepository()
	seedAppointment(repo, "ap-1", time.Date(2026, 11, 1, 9, 0, 0, 0, loc), "scheduled")
	seedAppointment(repo, "ap-2", time.Date(2026, 11, 1, 23, 30, 0, 0, loc), "scheduled")
	seedAppointment(repo, "ap-3", time.Date(2026, 11, 2, 0, 30, 0, 0, loc), "scheduled")

	uc := NewListAppointmentsByDate(repo, loc)

	list, err := uc.Execute(context.Background(), time.Date(2026, 11, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{"ap-1", "ap-2"}, ids)
}

func TestListAppointmentsByMonth(t *testing.T) {
	repo := newMockRepository()

	seedAppointment(repo, "ap-1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), "scheduled")
	seedAppointment(repo, "ap-2", time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC), "scheduled")
	seedAppointment(repo, "ap-3", time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), "scheduled")
	seedAppointment(repo, "ap-4", time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), "scheduled")

	uc := NewListAppointmentsByMonth(repo, time.UTC)

	list, err := uc.Execute(context.Background(), 2026, 3)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{"ap-1", "ap-2"}, ids)
}
