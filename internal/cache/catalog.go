package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

const catalogTTL = 5 * time.Minute

// Catalog cacheia a vitrine pública de serviços por slug. Só o catálogo:
// slots de agenda NUNCA passam por aqui — precisam refletir o estado
// atual dos agendamentos a cada consulta.
type Catalog struct {
	rdb *redis.Client
}

// NewCatalog aceita client nil (cache desligado) — todos os métodos viram
// no-op e a API segue funcionando direto do banco.
func NewCatalog(rdb *redis.Client) *Catalog {
	return &Catalog{rdb: rdb}
}

func servicesKey(slug string) string {
	return fmt.Sprintf("catalog:services:%s", slug)
}

func (c *Catalog) GetServices(ctx context.Context, slug string) ([]models.GroomService, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, servicesKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}

	var services []models.GroomService
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}

	return services, true
}

func (c *Catalog) SetServices(ctx context.Context, slug string, services []models.GroomService) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, servicesKey(slug), raw, catalogTTL).Err(); err != nil {
		log.Println("catalog cache set error:", err)
	}
}

func (c *Catalog) InvalidateServices(ctx context.Context, slug string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, servicesKey(slug)).Err(); err != nil {
		log.Println("catalog cache invalidate error:", err)
	}
}
