package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusScheduled, StatusConfirmed},
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCancelled},
		{StatusScheduled, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusNoShow},
	}
	for _, tc := range allowed {
		assert.NoError(t, CanTransition(tc.from, tc.to),
			"%s -> %s deveria ser permitido", tc.from, tc.to)
	}

	denied := []struct {
		from Status
		to   Status
	}{
		{StatusScheduled, StatusCompleted},
		{StatusInProgress, StatusConfirmed},
		{StatusInProgress, StatusScheduled},
		{StatusConfirmed, StatusScheduled},
	}
	for _, tc := range denied {
		err := CanTransition(tc.from, tc.to)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
			"%s -> %s deveria ser bloqueado", tc.from, tc.to)
	}
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		require.True(t, IsTerminal(terminal))

		for _, target := range []Status{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted} {
			err := CanTransition(terminal, target)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
				"%s é terminal, %s não pode sair dele", terminal, target)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(StatusScheduled, Status("paused"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestTransitionAppendsHistory(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{
		ID:     "ap-1",
		Status: string(StatusScheduled),
		History: []models.StatusHistory{
			NewHistoryEntry("ap-1", StatusScheduled, "Agendamento criado", now.Add(-time.Hour)),
		},
	}

	require.NoError(t, Transition(ap, StatusConfirmed, "cliente confirmou", now))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.Len(t, ap.History, 2)

	// entrada antiga intocada
	assert.Equal(t, string(StatusScheduled), ap.History[0].Status)
	assert.Equal(t, "Agendamento criado", ap.History[0].Note)

	last := ap.History[1]
	assert.Equal(t, string(StatusConfirmed), last.Status)
	assert.Equal(t, "cliente confirmou", last.Note)
	assert.Equal(t, now, last.CreatedAt)
}

func TestTransitionStampsTerminalTimes(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("completed", func(t *testing.T) {
		ap := &models.Appointment{ID: "ap-1", Status: string(StatusInProgress)}
		require.NoError(t, Transition(ap, StatusCompleted, "", now))
		require.NotNil(t, ap.CompletedAt)
		assert.Equal(t, now, *ap.CompletedAt)
		assert.Nil(t, ap.CancelledAt)
	})

	t.Run("cancelled", func(t *testing.T) {
		ap := &models.Appointment{ID: "ap-2", Status: string(StatusScheduled)}
		require.NoError(t, Transition(ap, StatusCancelled, "", now))
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
		assert.Nil(t, ap.CompletedAt)
	})
}

func TestRate(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	t.Run("only after completion", func(t *testing.T) {
		ap := &models.Appointment{ID: "ap-1", Status: string(StatusScheduled)}
		err := Rate(ap, 5, "ótimo", now)
		assert.True(t, httperr.IsBusiness(err, "not_completed"))
		assert.False(t, ap.Rated())
	})

	t.Run("success", func(t *testing.T) {
		ap := &models.Appointment{ID: "ap-1", Status: string(StatusCompleted)}
		require.NoError(t, Rate(ap, 4, "bom corte", now))

		require.NotNil(t, ap.RatingScore)
		assert.Equal(t, 4, *ap.RatingScore)
		assert.Equal(t, "bom corte", ap.RatingComment)
		require.NotNil(t, ap.RatedAt)
		assert.Equal(t, now, *ap.RatedAt)
	})

	t.Run("only once", func(t *testing.T) {
		score := 5
		ap := &models.Appointment{
			ID:          "ap-1",
			Status:      string(StatusCompleted),
			RatingScore: &score,
		}
		err := Rate(ap, 3, "", now)
		assert.True(t, httperr.IsBusiness(err, "already_rated"))
		assert.Equal(t, 5, *ap.RatingScore)
	})

	t.Run("score bounds", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			ap := &models.Appointment{ID: "ap-1", Status: string(StatusCompleted)}
			err := Rate(ap, score, "", now)
			assert.True(t, httperr.IsBusiness(err, "invalid_score"), "score %d", score)
		}
	})
}
