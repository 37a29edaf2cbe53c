package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
)

func TestMemoryDraftRepository_IsolatesCallers(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Hour)
	ctx := context.Background()

	draft := &response_models.MenuDraft{
		UnitName: "North",
		WeekKey:  "2024-03-11",
		Slots: map[db_models.Day]map[db_models.Category]response_models.DraftSlot{
			db_models.Monday: {db_models.Lunch: {SideDish: "rice"}},
		},
	}
	require.NoError(t, repo.Save(ctx, "k", draft))

	draft.Slots[db_models.Monday][db_models.Lunch] = response_models.DraftSlot{SideDish: "changed"}

	loaded, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "rice", loaded.Slots[db_models.Monday][db_models.Lunch].SideDish)

	require.NoError(t, repo.Delete(ctx, "k"))
	loaded, err = repo.Load(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestMemoryDraftRepository_JanitorReclaimsAbandonedDrafts(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, repo.Save(ctx, fmt.Sprintf("North|2024-03-11|%d", i), &response_models.MenuDraft{UnitName: "North"}))
	}
	require.Equal(t, 1000, repo.store.Len())

	done := make(chan struct{})
	go repo.RunJanitor(5*time.Millisecond, done)
	defer close(done)

	require.Eventually(t, func() bool { return repo.store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func newRedisDraftRepo(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, DraftRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisDraftRepository(client, ttl)
}

func TestRedisDraftRepository_RoundTrip(t *testing.T) {
	mr, repo := newRedisDraftRepo(t, time.Hour)
	ctx := context.Background()

	photo := "https://cdn.example/images/North/a.png"
	draft := &response_models.MenuDraft{
		AccountID: "acc-1",
		UnitName:  "North",
		WeekKey:   "2024-03-11",
		Slots: map[db_models.Day]map[db_models.Category]response_models.DraftSlot{
			db_models.Tuesday: {db_models.Dinner: {Protein: "fish", ImageRef: &photo, ImageChanged: true}},
		},
		OpenedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, "acc-1:North:2024-03-11", draft))
	require.True(t, mr.Exists("menuboard:draft:acc-1:North:2024-03-11"))

	loaded, err := repo.Load(ctx, "acc-1:North:2024-03-11")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	slot := loaded.Slots[db_models.Tuesday][db_models.Dinner]
	require.Equal(t, "fish", slot.Protein)
	require.True(t, slot.ImageChanged)
	require.Equal(t, photo, *slot.ImageRef)
	require.True(t, loaded.OpenedAt.Equal(draft.OpenedAt))

	require.NoError(t, repo.Delete(ctx, "acc-1:North:2024-03-11"))
	loaded, err = repo.Load(ctx, "acc-1:North:2024-03-11")
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestRedisDraftRepository_Expires(t *testing.T) {
	mr, repo := newRedisDraftRepo(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", &response_models.MenuDraft{WeekKey: "2024-03-11"}))
	mr.FastForward(2 * time.Minute)

	loaded, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, loaded)
}
