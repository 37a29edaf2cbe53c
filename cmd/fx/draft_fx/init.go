package draft_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"menuboard/internal/config"
	"menuboard/internal/infra"
	"menuboard/internal/repositories"
	"menuboard/internal/services"
)

var Module = fx.Provide(
	provideDraftService, provideDraftRepo)

func provideDraftRepo(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) repositories.DraftRepository {
	if cfg.Draft.Store != config.DraftStoreRedis {
		repo := repositories.NewMemoryDraftRepository(cfg.Draft.TTL)
		appendJanitor(lc, repo, cfg.Draft.PurgeInterval)
		return repo
	}

	client := infra.NewRedisClient(cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.PingRedis(ctx, client); err != nil {
				return fmt.Errorf("redis %s: %w", cfg.Draft.RedisAddr, err)
			}
			log.Info("draft store connected to redis", zap.String("addr", cfg.Draft.RedisAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return repositories.NewRedisDraftRepository(client, cfg.Draft.TTL)
}

type janitor interface {
	RunJanitor(interval time.Duration, done <-chan struct{})
}

func appendJanitor(lc fx.Lifecycle, j janitor, interval time.Duration) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go j.RunJanitor(interval, done)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

func provideDraftService(draftRepo repositories.DraftRepository, menuService services.MenuServiceInterface, imageService services.ImageServiceInterface, log *zap.Logger) services.DraftServiceInterface {
	return services.NewDraftService(draftRepo, menuService, imageService, log.Named("drafts"))
}
