package http

import (
	"github.com/gin-gonic/gin"
)

// processInsightReq binds and validates the shared insight query parameters.
func (h *handler) processInsightReq(c *gin.Context) (insightReq, error) {
	var req insightReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
