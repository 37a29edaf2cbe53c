package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"menuboard/cmd/fx/account_fx"
	"menuboard/cmd/fx/announcement_fx"
	"menuboard/cmd/fx/config_fx"
	"menuboard/cmd/fx/controllers_fx"
	"menuboard/cmd/fx/db_fx"
	"menuboard/cmd/fx/draft_fx"
	"menuboard/cmd/fx/logger_fx"
	"menuboard/cmd/fx/menu_fx"
	"menuboard/cmd/fx/metrics_fx"
	"menuboard/cmd/fx/storage_fx"
	"menuboard/cmd/fx/unit_fx"
	"menuboard/internal/api"
	"menuboard/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		unit_fx.Module,
		menu_fx.Module,
		announcement_fx.Module,
		account_fx.Module,
		draft_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
