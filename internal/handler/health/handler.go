package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doacao-api/internal/repository"
)

const (
	statusMessage = "Servidor de Doação de Sangue está rodando!"
	readyKey      = "ready"
	pingTimeout   = 2 * time.Second
)

type Handler struct {
	db    repository.Pinger
	cache *cache.Cache
	ttl   time.Duration
}

// NewHandler caches a successful readiness result for ttl. A ttl of zero
// pings the store on every probe.
func NewHandler(db repository.Pinger, ttl time.Duration) *Handler {
	return &Handler{
		db:    db,
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   statusMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	if ready, found := h.cache.Get(readyKey); found && ready.(bool) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("Readiness check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "Database connection failed",
		})
		return
	}

	if h.ttl > 0 {
		h.cache.SetDefault(readyKey, true)
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
