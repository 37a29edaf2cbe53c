package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
	"menuboard/pkg/memcache"
)

const draftKeyPrefix = "menuboard:draft:"

// DraftRepository holds in-progress menu edits. Load returns (nil, nil)
// when no draft exists for key.
type DraftRepository interface {
	Load(ctx context.Context, key string) (*response_models.MenuDraft, error)
	Save(ctx context.Context, key string, draft *response_models.MenuDraft) error
	Delete(ctx context.Context, key string) error
}

// MemoryDraftRepository keeps drafts in process. Abandoned drafts are only
// reclaimed while RunJanitor is running.
type MemoryDraftRepository struct {
	store *memcache.Store[response_models.MenuDraft]
	ttl   time.Duration
}

func NewMemoryDraftRepository(ttl time.Duration) *MemoryDraftRepository {
	return &MemoryDraftRepository{
		store: memcache.NewStore[response_models.MenuDraft](),
		ttl:   ttl,
	}
}

func (m *MemoryDraftRepository) Load(ctx context.Context, key string) (*response_models.MenuDraft, error) {
	draft, ok := m.store.Get(key)
	if !ok {
		return nil, nil
	}
	return cloneDraft(&draft), nil
}

func (m *MemoryDraftRepository) Save(ctx context.Context, key string, draft *response_models.MenuDraft) error {
	m.store.Set(key, *cloneDraft(draft), m.ttl)
	return nil
}

func (m *MemoryDraftRepository) Delete(ctx context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

// RunJanitor drops expired drafts every interval until done is closed.
func (m *MemoryDraftRepository) RunJanitor(interval time.Duration, done <-chan struct{}) {
	m.store.RunJanitor(interval, done)
}

// cloneDraft copies the slot maps so callers never share state with the store.
func cloneDraft(d *response_models.MenuDraft) *response_models.MenuDraft {
	out := *d
	out.Slots = make(map[db_models.Day]map[db_models.Category]response_models.DraftSlot, len(d.Slots))
	for day, categories := range d.Slots {
		inner := make(map[db_models.Category]response_models.DraftSlot, len(categories))
		for category, slot := range categories {
			inner[category] = slot
		}
		out.Slots[day] = inner
	}
	return &out
}

type redisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) DraftRepository {
	return &redisDraftRepository{client: client, ttl: ttl}
}

func (r *redisDraftRepository) Load(ctx context.Context, key string) (*response_models.MenuDraft, error) {
	raw, err := r.client.Get(ctx, draftKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var draft response_models.MenuDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *redisDraftRepository) Save(ctx context.Context, key string, draft *response_models.MenuDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKeyPrefix+key, raw, r.ttl).Err()
}

func (r *redisDraftRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, draftKeyPrefix+key).Err()
}
