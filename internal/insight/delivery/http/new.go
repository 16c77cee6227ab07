package http

import (
	"github.com/gin-gonic/gin"

	"taskpulse/internal/insight"
	"taskpulse/pkg/log"
)

// Handler is the public interface for the insight HTTP delivery layer.
type Handler interface {
	Overview(c *gin.Context)
	Tasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc insight.UseCase
}

// New creates a new HTTP handler for the insight domain.
func New(l log.Logger, uc insight.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
