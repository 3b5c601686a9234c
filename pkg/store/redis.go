package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/cache"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

const keyPrefix = "leads:"

// RedisStore persists submissions as JSON blobs in Redis. Entries do
// not expire; downstream CRM sync (out of scope) drains them.
type RedisStore struct {
	client *cache.Client
}

// NewRedisStore creates a Redis-backed submission store.
func NewRedisStore(client *cache.Client) *RedisStore {
	return &RedisStore{client: client}
}

func leadKey(referenceID string) string {
	return keyPrefix + referenceID
}

// Save stores the lead under its reference id.
func (s *RedisStore) Save(ctx context.Context, lead *models.LeadSubmission) error {
	raw, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}
	if err := s.client.Set(ctx, leadKey(lead.ReferenceID), raw, 0); err != nil {
		return fmt.Errorf("failed to store lead: %w", err)
	}
	if err := s.client.Redis.SAdd(ctx, "leads:index", lead.ReferenceID).Err(); err != nil {
		return fmt.Errorf("failed to index lead: %w", err)
	}
	return nil
}

// Get loads a lead by reference id.
func (s *RedisStore) Get(ctx context.Context, referenceID string) (*models.LeadSubmission, error) {
	raw, err := s.client.Get(ctx, leadKey(referenceID))
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}
	var lead models.LeadSubmission
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lead: %w", err)
	}
	return &lead, nil
}

// Count returns the number of stored submissions.
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	return s.client.Redis.SCard(ctx, "leads:index").Result()
}
