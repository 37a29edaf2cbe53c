package storage_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"menuboard/internal/config"
	"menuboard/internal/storage"
)

var Module = fx.Provide(provideObjectStore)

func provideObjectStore(cfg *config.Config, log *zap.Logger) storage.ObjectStore {
	if cfg.Storage.Driver == config.StorageLocal {
		log.Info("storing images on disk", zap.String("dir", cfg.Storage.MediaDir))
		return storage.NewLocalStore(cfg.Storage.MediaDir, cfg.Storage.MediaBaseURL)
	}
	log.Info("storing images in supabase", zap.String("bucket", cfg.Storage.SupabaseBucket))
	return storage.NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.SupabaseBucket, log.Named("storage"))
}
