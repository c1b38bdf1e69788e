package handler

import (
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
	activityService  *service.ActivityService
}

func NewDashboardHandler(
	trace *telemetry.Trace,
	dashboardService *service.DashboardService,
	activityService *service.ActivityService,
) *DashboardHandler {
	return &DashboardHandler{
		trace:            trace,
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

// Stats 儀表板統計
// @Summary 取得儀表板統計數字
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardStatsDto
// @Failure 500 {object} map[string]string
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	stats, err := h.dashboardService.Stats(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}

// Activities 活動牆
// @Summary 取得最近活動（無事件時以評核單與員工合成）
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ActivityFeedResponseDto
// @Failure 500 {object} map[string]string
// @Router /dashboard/activities [get]
func (h *DashboardHandler) Activities(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	feed, err := h.activityService.RecentFeed(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, feed)
}
