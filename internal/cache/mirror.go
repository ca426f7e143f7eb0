package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "barbearia"

// Coleções espelhadas no redis. Mesmos nomes do store remoto.
const (
	CollectionClients      = "clientes"
	CollectionBarbers      = "barbeiros"
	CollectionServices     = "servicos"
	CollectionProducts     = "produtos"
	CollectionAppointments = "agendamentos"
)

func IsKnownCollection(name string) bool {
	switch name {
	case CollectionClients, CollectionBarbers, CollectionServices,
		CollectionProducts, CollectionAppointments:
		return true
	}
	return false
}

// Key namespace por coleção, um registro por chave.
func Key(collection, id string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, collection, id)
}

// Mirror é o espelho local dos registros: escrito depois de todo write
// bem-sucedido no banco, sem vínculo transacional. Falha aqui nunca
// derruba a operação que acabou de ser persistida.
type Mirror struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(rdb *redis.Client, log *zap.Logger) *Mirror {
	return &Mirror{rdb: rdb, log: log}
}

func (m *Mirror) Put(ctx context.Context, collection, id string, record any) {
	data, err := json.Marshal(record)
	if err != nil {
		m.log.Warn("mirror: marshal failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
		return
	}

	if err := m.rdb.Set(ctx, Key(collection, id), data, 0).Err(); err != nil {
		m.log.Warn("mirror: write failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
	}
}

func (m *Mirror) Remove(ctx context.Context, collection, id string) {
	if err := m.rdb.Del(ctx, Key(collection, id)).Err(); err != nil {
		m.log.Warn("mirror: delete failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
	}
}

// Snapshot devolve todos os registros espelhados de uma coleção. É o que
// o app móvel usa para semear o cache local.
func (m *Mirror) Snapshot(ctx context.Context, collection string) ([]json.RawMessage, error) {
	pattern := Key(collection, "*")

	var keys []string
	iter := m.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}

	values, err := m.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		records = append(records, json.RawMessage(s))
	}

	return records, nil
}
