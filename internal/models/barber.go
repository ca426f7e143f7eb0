package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	// Disponível para novos agendamentos. Os horários livres por data
	// saem de WorkingHours + agenda do dia.
	Available bool `gorm:"default:true" json:"available"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	// Serviços que o barbeiro realiza
	Services []Service `gorm:"many2many:barbeiro_servicos;" json:"services"`

	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barber) TableName() string { return "barbeiros" }

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// OffersService diz se o serviço está na lista do barbeiro. Lista vazia
// significa que ele atende qualquer serviço.
func (b *Barber) OffersService(serviceID string) bool {
	if len(b.Services) == 0 {
		return true
	}
	for _, s := range b.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
