package relay

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/gutters/internal/observability"
)

// Relay admin surface: health, stats snapshot, prometheus metrics.
func (s *Service) adminRouter() *gin.Engine {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "name": s.cfg.Name})
	})
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.SnapshotStats())
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func (s *Service) startAdmin(ctx context.Context) {
	admin := &http.Server{
		Addr:    s.cfg.AdminAddr,
		Handler: s.adminRouter(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = admin.Shutdown(shutdownCtx)
	}()
	go func() {
		log.Info().Str("addr", s.cfg.AdminAddr).Msg("relay.admin listening")
		if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("relay.admin serve failed")
		}
	}()
}
