package bootstrap

import (
	"log/slog"

	"spark-bytes/internal/handler/middleware"
	"spark-bytes/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// The middleware logger also becomes the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
