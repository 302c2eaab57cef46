package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"schemaviz/internal/models"
)

const modelCacheTTL = 24 * time.Hour

type CacheRepository struct {
	rdb *redis.Client
}

func NewCacheRepository(rdb *redis.Client) *CacheRepository {
	return &CacheRepository{rdb: rdb}
}

func modelCacheKey(filename, content string) string {
	sum := sha256.Sum256([]byte(filename + "\x00" + content))
	return "schema:model:" + hex.EncodeToString(sum[:])
}

// GetModel returns the cached parse result for this (filename, content)
// pair, or nil on a miss.
func (r *CacheRepository) GetModel(ctx context.Context, filename, content string) (*models.SchemaModel, error) {
	data, err := r.rdb.Get(ctx, modelCacheKey(filename, content)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var model models.SchemaModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *CacheRepository) PutModel(ctx context.Context, filename, content string, model *models.SchemaModel) error {
	data, err := json.Marshal(model)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, modelCacheKey(filename, content), data, modelCacheTTL).Err()
}
