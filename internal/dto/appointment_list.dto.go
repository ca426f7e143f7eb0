package dto

import (
	"time"

	"github.com/barbearia-app/barbearia-api/internal/models"
)

type AppointmentListDTO struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
	Rated       bool      `json:"rated"`
}

func ToAppointmentList(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			BarberName:  ap.BarberName,
			ServiceName: ap.ServiceName,
			Rated:       ap.Rated(),
		})
	}
	return out
}
