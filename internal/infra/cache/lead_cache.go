package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/database"
	"github.com/gustavoantunes/bridalcover-crm/internal/usecase"
)

const defaultTTL = 5 * time.Minute

// LeadCache decora um LeadRepository com cache read-through de leads
// individuais no Redis. Listagens e contagens passam direto para o banco.
// Falha no Redis nunca derruba a operação, só degrada para o repositório.
type LeadCache struct {
	Inner usecase.LeadRepository
	RDB   *redis.Client
	TTL   time.Duration
	Log   *logrus.Logger
}

func NewLeadCache(inner usecase.LeadRepository, rdb *redis.Client, log *logrus.Logger) *LeadCache {
	return &LeadCache{
		Inner: inner,
		RDB:   rdb,
		TTL:   defaultTTL,
		Log:   log,
	}
}

func leadKey(id entity.LeadID) string {
	return "lead:" + id.String()
}

func (c *LeadCache) Save(ctx context.Context, lead *entity.Lead) error {
	if err := c.Inner.Save(ctx, lead); err != nil {
		return err
	}
	// O dado mudou: invalida em vez de regravar, a próxima leitura repovoa.
	if err := c.RDB.Del(ctx, leadKey(lead.ID())).Err(); err != nil {
		c.Log.WithError(err).Warn("falha ao invalidar lead no cache")
	}
	return nil
}

func (c *LeadCache) FindByID(ctx context.Context, id entity.LeadID) (*entity.Lead, error) {
	key := leadKey(id)

	data, err := c.RDB.Get(ctx, key).Bytes()
	if err == nil {
		lead, err := database.UnmarshalLead(data)
		if err == nil {
			return lead, nil
		}
		c.Log.WithError(err).Warn("entrada corrompida no cache, removendo")
		c.RDB.Del(ctx, key)
	} else if err != redis.Nil {
		c.Log.WithError(err).Warn("falha ao ler lead do cache")
	}

	lead, err := c.Inner.FindByID(ctx, id)
	if err != nil || lead == nil {
		return lead, err
	}

	if body, err := database.MarshalLead(lead); err == nil {
		if err := c.RDB.Set(ctx, key, body, c.TTL).Err(); err != nil {
			c.Log.WithError(err).Warn("falha ao gravar lead no cache")
		}
	}
	return lead, nil
}

func (c *LeadCache) FindAll(ctx context.Context, page, size int) ([]*entity.Lead, error) {
	return c.Inner.FindAll(ctx, page, size)
}

func (c *LeadCache) Count(ctx context.Context) (int64, error) {
	return c.Inner.Count(ctx)
}

func (c *LeadCache) DeleteByID(ctx context.Context, id entity.LeadID) (bool, error) {
	deleted, err := c.Inner.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if err := c.RDB.Del(ctx, leadKey(id)).Err(); err != nil {
		c.Log.WithError(err).Warn("falha ao invalidar lead no cache")
	}
	return deleted, nil
}
