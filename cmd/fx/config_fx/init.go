package config_fx

import (
	"go.uber.org/fx"

	"menuboard/internal/config"
)

var Module = fx.Provide(config.Load)
