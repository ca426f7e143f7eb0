package models

import "time"

// Notificação local do app, canal "agendamentos"
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID string `gorm:"size:36;index" json:"appointment_id"`

	Channel string `gorm:"size:50;default:'agendamentos'" json:"channel"`
	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:255" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notificacoes" }
