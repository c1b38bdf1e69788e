package handler

import (
	"simpleeval/internal/dto"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	trace           *telemetry.Trace
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(trace *telemetry.Trace, scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{trace: trace, scheduleService: scheduleService}
}

// List 排程列表
// @Summary 取得評核排程列表（updatedAt 新到舊）
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param status query string false "狀態過濾（draft/active/completed/canceled）"
// @Success 200 {array} dto.ScheduleResponseDto
// @Failure 400 {object} map[string]string
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	schedules, err := h.scheduleService.ListSchedules(ctx, orgID, c.Query("status"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedules)
}

// Get 取得排程
// @Summary 取得單一評核排程
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponseDto
// @Failure 404 {object} map[string]string
// @Router /schedules/{scheduleID} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "scheduleID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	schedule, err := h.scheduleService.GetScheduleByID(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedule)
}

// Create 新增排程
// @Summary 建立評核排程（以 draft 起始）
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateScheduleDto true "排程資訊"
// @Success 201 {object} dto.ScheduleResponseDto
// @Failure 400 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	userID, err := userIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	var req dto.CreateScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.scheduleService.CreateSchedule(ctx, orgID, userID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新排程
// @Summary 更新評核排程基本資料
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Param body body dto.UpdateScheduleDto true "排程更新資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{scheduleID} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "scheduleID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.scheduleService.UpdateScheduleByID(ctx, orgID, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Schedule updated"})
}

// Delete 刪除排程
// @Summary 刪除評核排程
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{scheduleID} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "scheduleID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.scheduleService.DeleteScheduleByID(ctx, orgID, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Schedule deleted"})
}

// Counts 各狀態排程數量
// @Summary 取得各狀態的排程數量
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /schedules/counts [get]
func (h *ScheduleHandler) Counts(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	counts, err := h.scheduleService.ScheduleCounts(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, counts)
}

// Transition 狀態轉移
// @Summary 轉移排程狀態（白名單制）
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Param body body dto.TransitionScheduleDto true "目標狀態"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{scheduleID}/status [put]
func (h *ScheduleHandler) Transition(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "scheduleID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.TransitionScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.scheduleService.TransitionSchedule(ctx, orgID, id, req.Status); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Schedule status updated"})
}
