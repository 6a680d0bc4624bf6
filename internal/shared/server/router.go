// Package server assembles the gin router and owns the wiring between the
// editor session, the debounced saver, and the feature handlers.
package server

import (
	"errors"
	"net"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/editing"
	"resume-studio/internal/exporting"
	"resume-studio/internal/pdf"
	"resume-studio/internal/shared/config"
	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
	"resume-studio/internal/store"
	"resume-studio/internal/theming"
	"resume-studio/resume/editor"
)

// App bundles the router with the pieces main needs for shutdown.
type App struct {
	Router *gin.Engine
	Saver  *store.Saver
}

// New restores persisted state, builds the editor session, and wires every
// feature handler onto a fresh router. Edits reach disk through the saver:
// the session's change hook arms it, its write closure snapshots the session
// and writes both slots.
func New(cfg config.Config) *App {
	slots := store.NewSlotStore(cfg.DataDir)
	data, theme := store.LoadState(slots)
	session := editor.NewSession(data, theme)

	saver := store.NewSaver(cfg.SaveDebounce, func() error {
		data, theme := session.Snapshot()
		return errors.Join(
			slots.Write(store.SlotResumeData, data),
			slots.Write(store.SlotTheme, theme),
		)
	})
	session.OnChange(saver.Touch)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS(cfg.CORSAllowOrigin))

	health := func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	}
	router.GET("/health", health)

	api := router.Group("/api/v1")
	api.GET("/health", health)
	editing.NewHandler(session).RegisterRoutes(api)
	theming.NewHandler(session).RegisterRoutes(api)
	exporting.NewHandler(session, saver, pdf.NewRenderer(cfg.ChromePath)).RegisterRoutes(api)

	return &App{Router: router, Saver: saver}
}

// Addr joins the configured host and port into a listen address.
func Addr(cfg config.Config) string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}
