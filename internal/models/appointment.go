package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Nomes copiados no momento da criação. Edições posteriores em
	// cliente/barbeiro/serviço não reescrevem agendamentos antigos.
	ClientID   string `gorm:"size:36;index" json:"client_id"`
	ClientName string `gorm:"size:100" json:"client_name"`

	BarberID   string `gorm:"size:36;index" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	ServiceID   string `gorm:"size:36;index" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	// Histórico append-only de transições de status
	History []StatusHistory `gorm:"foreignKey:AppointmentID" json:"history"`

	// Avaliação única, permitida só depois de concluído
	RatingScore   *int       `json:"rating_score"`
	RatingComment string     `gorm:"size:255" json:"rating_comment"`
	RatedAt       *time.Time `json:"rated_at"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Token de concorrência otimista: update exige a versão lida
	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "agendamentos" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	for i := range a.History {
		if a.History[i].AppointmentID == "" {
			a.History[i].AppointmentID = a.ID
		}
	}
	return nil
}

func (a *Appointment) Rated() bool {
	return a.RatingScore != nil
}

type StatusHistory struct {
	ID uint `gorm:"primaryKey" json:"-"`

	AppointmentID string `gorm:"size:36;index" json:"-"`

	Status string `gorm:"size:20;not null" json:"status"`
	Note   string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}

func (StatusHistory) TableName() string { return "agendamento_historico" }
