package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "barbearia:clientes:c-1", Key(CollectionClients, "c-1"))
	assert.Equal(t, "barbearia:agendamentos:ap-9", Key(CollectionAppointments, "ap-9"))
}

func TestIsKnownCollection(t *testing.T) {
	for _, c := range []string{
		CollectionClients,
		CollectionBarbers,
		CollectionServices,
		CollectionProducts,
		CollectionAppointments,
	} {
		assert.True(t, IsKnownCollection(c), c)
	}

	assert.False(t, IsKnownCollection("contas"))
	assert.False(t, IsKnownCollection(""))
	assert.False(t, IsKnownCollection("clients"))
}
