package appointment

import "time"

type AvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ActiveStatuses são os status que ocupam horário na agenda.
func ActiveStatuses() []string {
	return []string{
		string(StatusScheduled),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}
