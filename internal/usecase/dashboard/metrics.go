package dashboard

import (
	"sort"
	"time"

	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

// Leitura pura sobre os dados em memória: nada aqui persiste, tudo é
// recalculado sob demanda.

type Period string

const (
	PeriodDay   Period = "dia"
	PeriodWeek  Period = "semana"
	PeriodMonth Period = "mes"
)

type BarberOccupancy struct {
	BarberID   string  `json:"barber_id"`
	BarberName string  `json:"barber_name"`
	Rate       float64 `json:"rate"`
}

type ServiceCount struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type Metrics struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`

	Occupancy   []BarberOccupancy `json:"occupancy"`
	TopServices []ServiceCount    `json:"top_services"`
	PeakHours   []HourCount       `json:"peak_hours"`
}

// PeriodBounds devolve a janela [start, end) do período no calendário de
// now: dia corrente, semana começando no domingo, ou mês corrente.
func PeriodBounds(now time.Time, period Period) (time.Time, time.Time) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case PeriodWeek:
		start := midnight.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)
	default:
		return midnight, midnight.AddDate(0, 0, 1)
	}
}

func CountInPeriod(now time.Time, period Period, appointments []models.Appointment) int {
	start, end := PeriodBounds(now, period)

	count := 0
	for _, ap := range appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			count++
		}
	}
	return count
}

// CompletionRate é o percentual de atendimentos concluídos do barbeiro
// sobre o total atribuído a ele. Sem agendamentos: 0.
func CompletionRate(barberID string, appointments []models.Appointment) float64 {
	total := 0
	completed := 0

	for _, ap := range appointments {
		if ap.BarberID != barberID {
			continue
		}
		total++
		if ap.Status == string(domain.StatusCompleted) {
			completed++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// TopServices ranqueia os serviços por quantidade de agendamentos.
// Empate desempata por nome, para a lista ser estável.
func TopServices(appointments []models.Appointment, services []models.Service, limit int) []ServiceCount {
	counts := make([]ServiceCount, 0, len(services))
	for _, s := range services {
		count := 0
		for _, ap := range appointments {
			if ap.ServiceID == s.ID {
				count++
			}
		}
		counts = append(counts, ServiceCount{
			ServiceID:   s.ID,
			ServiceName: s.Name,
			Count:       count,
		})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].ServiceName < counts[j].ServiceName
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// PeakHours ranqueia as horas do dia por quantidade de agendamentos.
func PeakHours(appointments []models.Appointment, limit int) []HourCount {
	byHour := make(map[int]int)
	for _, ap := range appointments {
		byHour[ap.StartTime.Hour()]++
	}

	hours := make([]HourCount, 0, len(byHour))
	for hour, count := range byHour {
		hours = append(hours, HourCount{Hour: hour, Count: count})
	}

	sort.Slice(hours, func(i, j int) bool {
		if hours[i].Count != hours[j].Count {
			return hours[i].Count > hours[j].Count
		}
		return hours[i].Hour < hours[j].Hour
	})

	if len(hours) > limit {
		hours = hours[:limit]
	}
	return hours
}

func Compute(
	now time.Time,
	appointments []models.Appointment,
	barbers []models.Barber,
	services []models.Service,
) Metrics {

	occupancy := make([]BarberOccupancy, 0, len(barbers))
	for _, b := range barbers {
		occupancy = append(occupancy, BarberOccupancy{
			BarberID:   b.ID,
			BarberName: b.Name,
			Rate:       CompletionRate(b.ID, appointments),
		})
	}

	return Metrics{
		Today:       CountInPeriod(now, PeriodDay, appointments),
		ThisWeek:    CountInPeriod(now, PeriodWeek, appointments),
		ThisMonth:   CountInPeriod(now, PeriodMonth, appointments),
		Occupancy:   occupancy,
		TopServices: TopServices(appointments, services, 3),
		PeakHours:   PeakHours(appointments, 3),
	}
}
