package http

import (
	"github.com/gin-gonic/gin"

	"taskpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	insights := rg.Group("/insights")
	{
		insights.GET("/overview", mw.RateLimit(), h.Overview)
		insights.GET("/tasks", mw.RateLimit(), h.Tasks)
	}
}
