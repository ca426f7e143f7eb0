package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

// ===============================
// Mocks
// ===============================

type mockRepository struct {
	clients  map[string]*models.Client
	barbers  map[string]*models.Barber
	services map[string]*models.Service

	appointments map[string]*models.Appointment
	nextID       int

	withinHours bool
	hoursErr    error
	conflictErr error

	workingHours    map[int]*models.WorkingHours
	dayAppointments []models.Appointment
}

var _ domain.Repository = (*mockRepository)(nil)

func newMockRepository() *mockRepository {
	return &mockRepository{
		clients:      make(map[string]*models.Client),
		barbers:      make(map[string]*models.Barber),
		services:     make(map[string]*models.Service),
		appointments: make(map[string]*models.Appointment),
		withinHours:  true,
	}
}

func (m *mockRepository) GetClient(_ context.Context, id string) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (m *mockRepository) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := m.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (m *mockRepository) GetService(_ context.Context, id string) (*models.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (m *mockRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.nextID++
	ap.ID = fmt.Sprintf("ap-%d", m.nextID)
	ap.Version = 1
	for i := range ap.History {
		if ap.History[i].AppointmentID == "" {
			ap.History[i].AppointmentID = ap.ID
		}
	}

	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepository) AssertNoTimeConflict(_ context.Context, _ string, _, _ time.Time) error {
	return m.conflictErr
}

func (m *mockRepository) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := m.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	copied := *ap
	copied.History = append([]models.StatusHistory(nil), ap.History...)
	return &copied, nil
}

func (m *mockRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	current, ok := m.appointments[ap.ID]
	if !ok {
		return httperr.ErrBusiness("not_found")
	}
	if current.Version != ap.Version {
		return httperr.ErrBusiness("version_conflict")
	}

	ap.Version++
	stored := *ap
	stored.History = append([]models.StatusHistory(nil), ap.History...)
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepository) DeleteAppointment(_ context.Context, id string) error {
	delete(m.appointments, id)
	return nil
}

func (m *mockRepository) GetWorkingHours(_ context.Context, _ string, weekday int) (*models.WorkingHours, error) {
	if wh, ok := m.workingHours[weekday]; ok {
		return wh, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) ListAppointmentsForDay(_ context.Context, _ string, _, _ time.Time) ([]models.Appointment, error) {
	return m.dayAppointments, nil
}

func (m *mockRepository) IsWithinWorkingHours(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	if m.hoursErr != nil {
		return false, m.hoursErr
	}
	return m.withinHours, nil
}

func (m *mockRepository) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

type mockNotifier struct {
	created   []string
	statuses  []string
	scheduled []string
	cancelled []string
}

func (m *mockNotifier) NotifyCreated(ap *models.Appointment) {
	m.created = append(m.created, ap.ID)
}

func (m *mockNotifier) NotifyStatusChanged(ap *models.Appointment, status string) {
	m.statuses = append(m.statuses, status)
}

func (m *mockNotifier) ScheduleReminder(ap *models.Appointment) {
	m.scheduled = append(m.scheduled, ap.ID)
}

func (m *mockNotifier) CancelReminder(appointmentID string) {
	m.cancelled = append(m.cancelled, appointmentID)
}

// ===============================
// Setup
// ===============================

type discardSink struct{}

func (discardSink) Log(_ *string, _, _ string, _ *string, _ any) error { return nil }

func setup(t *testing.T) (*mockRepository, *mockNotifier, *audit.Dispatcher, Options) {
	t.Helper()

	repo := newMockRepository()
	repo.clients["c-1"] = &models.Client{ID: "c-1", Name: "João Silva"}
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Name: "Carlos", Available: true}
	repo.services["s-1"] = &models.Service{ID: "s-1", Name: "Corte", Price: 50, DurationMin: 30}

	notifier := &mockNotifier{}
	dispatcher := audit.NewDispatcher(discardSink{}, zap.NewNop())

	opts := Options{Location: time.UTC, MinAdvanceMinutes: 120}
	return repo, notifier, dispatcher, opts
}

func futureDateTime() (string, string) {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return start.Format("2006-01-02"), start.Format("15:04")
}

func createOne(t *testing.T, repo *mockRepository, notifier *mockNotifier, dispatcher *audit.Dispatcher, opts Options) *models.Appointment {
	t.Helper()

	date, hm := futureDateTime()
	ap, err := NewCreateAppointment(repo, dispatcher, notifier, opts).Execute(
		context.Background(),
		CreateAppointmentInput{
			AccountID: "acc-1",
			ClientID:  "c-1",
			BarberID:  "b-1",
			ServiceID: "s-1",
			Date:      date,
			Time:      hm,
		},
	)
	require.NoError(t, err)
	return ap
}

// ===============================
// Create
// ===============================

func TestCreateAppointment(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)

	ap := createOne(t, repo, notifier, dispatcher, opts)

	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, "João Silva", ap.ClientName)
	assert.Equal(t, "Carlos", ap.BarberName)
	assert.Equal(t, "Corte", ap.ServiceName)
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))

	require.Len(t, ap.History, 1)
	assert.Equal(t, "scheduled", ap.History[0].Status)
	assert.Equal(t, ap.ID, ap.History[0].AppointmentID)

	assert.Equal(t, []string{ap.ID}, notifier.created)
	assert.Equal(t, []string{ap.ID}, notifier.scheduled)
}

func TestCreateAppointmentRejections(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	uc := NewCreateAppointment(repo, dispatcher, notifier, opts)
	date, hm := futureDateTime()

	t.Run("invalid date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-1", ServiceID: "s-1",
			Date: "10/03/2026", Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})

	t.Run("too soon", func(t *testing.T) {
		soon := time.Now().UTC().Add(30 * time.Minute)
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-1", ServiceID: "s-1",
			Date: soon.Format("2006-01-02"), Time: soon.Format("15:04"),
		})
		assert.True(t, httperr.IsBusiness(err, "too_soon"))
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "ghost", BarberID: "b-1", ServiceID: "s-1",
			Date: date, Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	})

	t.Run("barber unavailable", func(t *testing.T) {
		repo.barbers["b-2"] = &models.Barber{ID: "b-2", Name: "Pedro", Available: false}
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-2", ServiceID: "s-1",
			Date: date, Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
	})

	t.Run("service not offered", func(t *testing.T) {
		repo.services["s-2"] = &models.Service{ID: "s-2", Name: "Barba", DurationMin: 20}
		repo.barbers["b-3"] = &models.Barber{
			ID: "b-3", Name: "Rafael", Available: true,
			Services: []models.Service{{ID: "s-1"}},
		}
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-3", ServiceID: "s-2",
			Date: date, Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "service_not_offered"))
	})

	t.Run("outside working hours", func(t *testing.T) {
		repo.withinHours = false
		defer func() { repo.withinHours = true }()

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-1", ServiceID: "s-1",
			Date: date, Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	})

	t.Run("working hours lookup failure is not a business rejection", func(t *testing.T) {
		repo.hoursErr = errors.New("connection refused")
		defer func() { repo.hoursErr = nil }()

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-1", ServiceID: "s-1",
			Date: date, Time: hm,
		})
		require.Error(t, err)
		assert.False(t, httperr.IsBusiness(err, "outside_working_hours"))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("time conflict", func(t *testing.T) {
		repo.conflictErr = httperr.ErrBusiness("time_conflict")
		defer func() { repo.conflictErr = nil }()

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID: "c-1", BarberID: "b-1", ServiceID: "s-1",
			Date: date, Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "time_conflict"))
		assert.Empty(t, notifier.created)
	})
}

// ===============================
// Transition
// ===============================

func TestTransitionAppointment(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	created := createOne(t, repo, notifier, dispatcher, opts)

	uc := NewTransitionAppointment(repo, dispatcher, notifier, opts)

	ap, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AccountID:     "acc-1",
		AppointmentID: created.ID,
		Target:        domain.StatusConfirmed,
		Note:          "cliente confirmou",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", ap.Status)
	require.Len(t, ap.History, 2)
	assert.Equal(t, "scheduled", ap.History[0].Status)
	assert.Equal(t, "confirmed", ap.History[1].Status)

	assert.Equal(t, []string{"confirmed"}, notifier.statuses)
	assert.Empty(t, notifier.cancelled, "confirmado ainda mantém o lembrete")
}

func TestTransitionToTerminalCancelsReminder(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	created := createOne(t, repo, notifier, dispatcher, opts)

	uc := NewTransitionAppointment(repo, dispatcher, notifier, opts)

	ap, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AccountID:     "acc-1",
		AppointmentID: created.ID,
		Target:        domain.StatusCancelled,
	})
	require.NoError(t, err)

	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, []string{created.ID}, notifier.cancelled)
}

func TestTransitionInvalid(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	created := createOne(t, repo, notifier, dispatcher, opts)

	uc := NewTransitionAppointment(repo, dispatcher, notifier, opts)

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), TransitionAppointmentInput{
			AppointmentID: "ghost",
			Target:        domain.StatusConfirmed,
		})
		assert.True(t, httperr.IsBusiness(err, "not_found"))
	})

	t.Run("skip to completed", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), TransitionAppointmentInput{
			AppointmentID: created.ID,
			Target:        domain.StatusCompleted,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
		assert.Empty(t, notifier.statuses)
	})

	t.Run("stale version", func(t *testing.T) {
		stale, err := repo.GetAppointment(context.Background(), created.ID)
		require.NoError(t, err)

		// outro escritor passa na frente
		repo.appointments[created.ID].Version++

		require.NoError(t, domain.Transition(stale, domain.StatusConfirmed, "", time.Now()))
		err = repo.UpdateAppointment(context.Background(), stale)
		assert.True(t, httperr.IsBusiness(err, "version_conflict"))
	})
}

// ===============================
// Rate
// ===============================

func TestRateAppointment(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	created := createOne(t, repo, notifier, dispatcher, opts)

	transition := NewTransitionAppointment(repo, dispatcher, notifier, opts)
	rate := NewRateAppointment(repo, dispatcher, opts)

	t.Run("before completion", func(t *testing.T) {
		_, err := rate.Execute(context.Background(), RateAppointmentInput{
			AppointmentID: created.ID,
			Score:         5,
		})
		assert.True(t, httperr.IsBusiness(err, "not_completed"))
	})

	_, err := transition.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: created.ID,
		Target:        domain.StatusInProgress,
	})
	require.NoError(t, err)
	_, err = transition.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: created.ID,
		Target:        domain.StatusCompleted,
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ap, err := rate.Execute(context.Background(), RateAppointmentInput{
			AccountID:     "acc-1",
			AppointmentID: created.ID,
			Score:         5,
			Comment:       "excelente",
		})
		require.NoError(t, err)
		require.NotNil(t, ap.RatingScore)
		assert.Equal(t, 5, *ap.RatingScore)
		assert.True(t, ap.Rated())
	})

	t.Run("only once", func(t *testing.T) {
		_, err := rate.Execute(context.Background(), RateAppointmentInput{
			AppointmentID: created.ID,
			Score:         1,
		})
		assert.True(t, httperr.IsBusiness(err, "already_rated"))
	})
}

// ===============================
// Delete
// ===============================

func TestDeleteAppointment(t *testing.T) {
	repo, notifier, dispatcher, opts := setup(t)
	created := createOne(t, repo, notifier, dispatcher, opts)

	uc := NewDeleteAppointment(repo, dispatcher, notifier)

	require.NoError(t, uc.Execute(context.Background(), "acc-1", created.ID))
	_, err := repo.GetAppointment(context.Background(), created.ID)
	assert.True(t, httperr.IsBusiness(err, "not_found"))
	assert.Contains(t, notifier.cancelled, created.ID)

	// repetir o delete não é erro
	require.NoError(t, uc.Execute(context.Background(), "acc-1", created.ID))
}
