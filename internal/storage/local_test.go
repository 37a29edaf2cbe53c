package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Put(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media/")

	ref, err := store.Put(context.Background(), "images/North/a.jpg", []byte("jpeg"), "image/jpeg")

	require.NoError(t, err)
	require.Equal(t, "/media/images/North/a.jpg", ref)
	data, err := os.ReadFile(filepath.Join(root, "images", "North", "a.jpg"))
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg"), data)
}

func TestLocalStore_NeverOverwrites(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")

	_, err := store.Put(context.Background(), "images/x/a.png", []byte("1"), "image/png")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "images/x/a.png", []byte("2"), "image/png")
	require.True(t, errors.Is(err, ErrUploadFailed))
}

func TestLocalStore_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media")

	ref, err := store.Put(context.Background(), "../../escape.png", []byte("x"), "image/png")

	require.NoError(t, err)
	require.Equal(t, "/media/escape.png", ref)
	_, err = os.Stat(filepath.Join(root, "escape.png"))
	require.NoError(t, err)
}
