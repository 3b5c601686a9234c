package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/cache"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

func sampleLead(ref string) *models.LeadSubmission {
	return &models.LeadSubmission{
		Kind:        models.KindTestRide,
		Fields:      models.Fields{"name": "Asha Rao", "phone": "9876543210"},
		ReferenceID: ref,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	lead := sampleLead("TVS-TR-AAAA1111")

	require.NoError(t, s.Save(ctx, lead))

	got, err := s.Get(ctx, "TVS-TR-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, lead.Fields, got.Fields)
	assert.Equal(t, lead.Kind, got.Kind)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_IsolatesStoredFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	lead := sampleLead("TVS-TR-BBBB2222")
	require.NoError(t, s.Save(ctx, lead))

	lead.Fields["name"] = "mutated after save"

	got, err := s.Get(ctx, "TVS-TR-BBBB2222")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.Fields["name"])

	got.Fields["name"] = "mutated after get"
	again, err := s.Get(ctx, "TVS-TR-BBBB2222")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", again.Fields["name"])
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_SaveAndGet(t *testing.T) {
	s := newRedisStore(t)
	ctx := context.Background()
	lead := sampleLead("TVS-SB-CCCC3333")

	require.NoError(t, s.Save(ctx, lead))

	got, err := s.Get(ctx, "TVS-SB-CCCC3333")
	require.NoError(t, err)
	assert.Equal(t, lead.Kind, got.Kind)
	assert.Equal(t, lead.Fields, got.Fields)
	assert.Equal(t, lead.ReferenceID, got.ReferenceID)
}

func TestRedisStore_GetUnknown(t *testing.T) {
	s := newRedisStore(t)
	_, err := s.Get(context.Background(), "TVS-XX-MISSING0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Count(t *testing.T) {
	s := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleLead("TVS-TR-DDDD4444")))
	require.NoError(t, s.Save(ctx, sampleLead("TVS-TR-EEEE5555")))
	// Saving the same reference twice must not double count.
	require.NoError(t, s.Save(ctx, sampleLead("TVS-TR-EEEE5555")))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
