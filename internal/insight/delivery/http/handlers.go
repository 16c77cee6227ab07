package http

import (
	"github.com/gin-gonic/gin"

	"taskpulse/pkg/response"
)

// Overview godoc
// @Summary     Task status overview
// @Description Resolves the named date range and returns status bucket counts for tasks in it.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       range      query string true  "Range token (Today, Yesterday, This Week, Last Week, Next Week, This Month, Last Month, Next Month, This Year, All Time, Custom)"
// @Param       start_date query string false "Custom range start (YYYY-MM-DD, required with range=Custom)"
// @Param       end_date   query string false "Custom range end (YYYY-MM-DD, required with range=Custom)"
// @Param       view       query string false "Task view: mine, delegated, all (default: all)"
// @Param       user_id    query string false "User the view is relative to"
// @Param       anchor_all_time query bool false "Anchor All Time to the min/max due dates in the data"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream task source unavailable"
// @Router      /api/v1/insights/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInsightReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// Tasks godoc
// @Summary     Tasks in a date range
// @Description Returns the task list filtered into the resolved date range.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       range      query string true  "Range token"
// @Param       start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param       end_date   query string false "Custom range end (YYYY-MM-DD)"
// @Param       view       query string false "Task view: mine, delegated, all"
// @Param       user_id    query string false "User the view is relative to"
// @Param       anchor_all_time query bool false "Anchor All Time to the min/max due dates in the data"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream task source unavailable"
// @Router      /api/v1/insights/tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInsightReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Tasks(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Tasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(output))
}
