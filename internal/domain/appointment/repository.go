package appointment

import (
	"context"
	"time"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateAppointment persiste o registro guardado pela versão lida.
	// Falha com not_found se o id sumiu e version_conflict se outro
	// escritor passou na frente.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment é idempotente: id inexistente não é erro.
	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		barberID string,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	IsWithinWorkingHours(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) (bool, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
