package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"guidechat/cmd/fx/assistant_fx"
	"guidechat/cmd/fx/chat_fx"
	"guidechat/cmd/fx/config_fx"
	"guidechat/cmd/fx/controllers_fx"
	"guidechat/cmd/fx/memcache_fx"
	"guidechat/cmd/fx/metrics_fx"
	"guidechat/cmd/fx/session_fx"
	"guidechat/internal/api/controllers"
	"guidechat/internal/config"
	"guidechat/pkg/logging"
	"guidechat/pkg/middleware"
	"guidechat/web"
)

func main() {
	logging.Preinit()

	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		config_fx.Module,
		metrics_fx.Module,
		memcache_fx.Module,
		session_fx.Module,
		assistant_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	registry *prometheus.Registry,
	chatController *controllers.ChatController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.SetHTMLTemplate(web.Templates())

	RegisterRoutes(r, registry, chatController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	registry *prometheus.Registry,
	chatController *controllers.ChatController,
	healthController *controllers.HealthController) {

	r.StaticFS("/static", web.Static())

	r.GET("/", chatController.HomeHandler)
	r.POST("/start", chatController.StartHandler)
	r.POST("/process_chat", chatController.ProcessChatHandler)

	r.GET("/healthz", healthController.LivenessHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
}
