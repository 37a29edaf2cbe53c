package memcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	s := NewStore[string]()

	s.Set("a", "one", time.Minute)
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, "one", v)

	s.Delete("a")
	_, ok = s.Get("a")
	require.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	s := NewStore[int]()
	s.now = func() time.Time { return now }

	s.Set("short", 1, time.Minute)
	s.Set("long", 2, time.Hour)

	now = now.Add(2 * time.Minute)

	_, ok := s.Get("short")
	require.False(t, ok)
	v, ok := s.Get("long")
	require.True(t, ok)
	require.Equal(t, 2, v)

	now = now.Add(2 * time.Hour)
	require.Equal(t, 1, s.Purge())
	require.Equal(t, 0, s.Len())
}

func TestStore_RunJanitorDropsUntouchedEntries(t *testing.T) {
	s := NewStore[int]()
	for i := 0; i < 1000; i++ {
		s.Set(fmt.Sprintf("draft-%d", i), i, time.Millisecond)
	}
	s.Set("kept", 1, time.Hour)

	done := make(chan struct{})
	go s.RunJanitor(5*time.Millisecond, done)
	defer close(done)

	require.Eventually(t, func() bool { return s.Len() == 1 }, time.Second, 5*time.Millisecond)
	v, ok := s.Get("kept")
	require.True(t, ok)
	require.Equal(t, 1, v)
}
