package dashboard

import (
	"time"

	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type BarberRevenue struct {
	BarberID     string  `json:"barber_id"`
	BarberName   string  `json:"barber_name"`
	Appointments int     `json:"appointments"`
	Total        float64 `json:"total"`
}

type RevenueReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Barbers []BarberRevenue `json:"barbers"`

	TotalAppointments int     `json:"total_appointments"`
	TotalValue        float64 `json:"total_value"`
}

// MonthlyRevenue fecha o mês corrente por barbeiro: atendimentos
// concluídos vezes o preço do serviço. Agendamento cancelado ou futuro
// não vira receita.
func MonthlyRevenue(
	now time.Time,
	appointments []models.Appointment,
	barbers []models.Barber,
	services []models.Service,
) RevenueReport {

	start, end := PeriodBounds(now, PeriodMonth)

	priceByService := make(map[string]float64, len(services))
	for _, s := range services {
		priceByService[s.ID] = s.Price
	}

	report := RevenueReport{
		Year:    now.Year(),
		Month:   int(now.Month()),
		Barbers: make([]BarberRevenue, 0, len(barbers)),
	}

	for _, b := range barbers {
		row := BarberRevenue{
			BarberID:   b.ID,
			BarberName: b.Name,
		}

		for _, ap := range appointments {
			if ap.BarberID != b.ID {
				continue
			}
			if ap.Status != string(domain.StatusCompleted) {
				continue
			}
			if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
				continue
			}

			row.Appointments++
			row.Total += priceByService[ap.ServiceID]
		}

		report.Barbers = append(report.Barbers, row)
		report.TotalAppointments += row.Appointments
		report.TotalValue += row.Total
	}

	return report
}
