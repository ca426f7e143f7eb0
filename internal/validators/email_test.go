package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{
		"joao@example.com",
		"maria.silva@barbearia.com.br",
		"x+tag@dominio.io",
	}
	for _, email := range valid {
		assert.True(t, IsEmailFormatValid(email), email)
	}

	invalid := []string{
		"",
		"semarroba.com",
		"dois@@exemplo.com",
		"espaco em@exemplo.com",
		"semdominio@",
		"sem@tld",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailFormatValid(email), email)
	}
}
