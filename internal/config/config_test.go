package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/menuboard")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, StorageSupabase, cfg.Storage.Driver)
	require.Equal(t, "https://example.supabase.co", cfg.Storage.SupabaseURL)
	require.Equal(t, "cardapio", cfg.Storage.SupabaseBucket)
	require.Equal(t, DraftStoreMemory, cfg.Draft.Store)
	require.Equal(t, 2*time.Hour, cfg.Draft.TTL)
	require.Equal(t, 10*time.Minute, cfg.Draft.PurgeInterval)
	require.Equal(t, 12*time.Hour, cfg.JWT.TTL)
}

func TestLoad_MissingBackendCredentials(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "supabase")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")

	_, err := Load()

	require.True(t, errors.Is(err, ErrMissingConfig))
	require.Contains(t, err.Error(), "POSTGRES_URL")
	require.Contains(t, err.Error(), "SUPABASE_URL")
	require.Contains(t, err.Error(), "SUPABASE_KEY")
}

func TestLoad_LocalStorageNeedsNoSupabase(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/menuboard")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")
	t.Setenv("DRAFT_STORE", "redis")
	t.Setenv("DRAFT_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StorageLocal, cfg.Storage.Driver)
	require.Equal(t, DraftStoreRedis, cfg.Draft.Store)
	require.Equal(t, 30*time.Minute, cfg.Draft.TTL)
}

func TestLoad_UnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := Load()
	require.True(t, errors.Is(err, ErrMissingConfig))
}

func TestLoad_RejectsNonPositivePurgeInterval(t *testing.T) {
	setRequired(t)
	t.Setenv("DRAFT_PURGE_INTERVAL", "0s")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingConfig)
}

func TestLoadDatabase_OnlyNeedsPostgres(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/menuboard")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_DRIVER", "supabase")
	t.Setenv("SUPABASE_URL", "")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/menuboard", cfg.DB.URL)

	t.Setenv("POSTGRES_URL", "")
	_, err = LoadDatabase()
	require.ErrorIs(t, err, ErrMissingConfig)
}
