package handler

import (
	"simpleeval/internal/dto"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
)

type JobFunctionHandler struct {
	trace              *telemetry.Trace
	jobFunctionService *service.JobFunctionService
	scheduleService    *service.ScheduleService
}

func NewJobFunctionHandler(
	trace *telemetry.Trace,
	jobFunctionService *service.JobFunctionService,
	scheduleService *service.ScheduleService,
) *JobFunctionHandler {
	return &JobFunctionHandler{
		trace:              trace,
		jobFunctionService: jobFunctionService,
		scheduleService:    scheduleService,
	}
}

// List 職能列表
// @Summary 取得組織內職能列表
// @Tags JobFunction
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.JobFunctionResponseDto
// @Failure 500 {object} map[string]string
// @Router /job-functions [get]
func (h *JobFunctionHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	jobFunctions, err := h.jobFunctionService.ListJobFunctions(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, jobFunctions)
}

// Get 取得職能
// @Summary 取得單一職能
// @Tags JobFunction
// @Security BearerAuth
// @Produce json
// @Param jobFunctionID path string true "JobFunction ID"
// @Success 200 {object} dto.JobFunctionResponseDto
// @Failure 404 {object} map[string]string
// @Router /job-functions/{jobFunctionID} [get]
func (h *JobFunctionHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "jobFunctionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	jobFunction, err := h.jobFunctionService.GetJobFunctionByID(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, jobFunction)
}

// Create 新增職能
// @Summary 新增職能
// @Tags JobFunction
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateJobFunctionDto true "職能資訊"
// @Success 201 {object} dto.JobFunctionResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /job-functions [post]
func (h *JobFunctionHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	var req dto.CreateJobFunctionDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.jobFunctionService.CreateJobFunction(ctx, orgID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新職能
// @Summary 更新職能
// @Tags JobFunction
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param jobFunctionID path string true "JobFunction ID"
// @Param body body dto.UpdateJobFunctionDto true "職能更新資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /job-functions/{jobFunctionID} [put]
func (h *JobFunctionHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "jobFunctionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateJobFunctionDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.jobFunctionService.UpdateJobFunctionByID(ctx, orgID, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Job function updated"})
}

// Schedules 職能底下生效中的排程
// @Summary 取得職能目前生效中的評核排程
// @Tags JobFunction
// @Security BearerAuth
// @Produce json
// @Param jobFunctionID path string true "JobFunction ID"
// @Success 200 {array} dto.ScheduleResponseDto
// @Failure 404 {object} map[string]string
// @Router /job-functions/{jobFunctionID}/schedules [get]
func (h *JobFunctionHandler) Schedules(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "jobFunctionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	// 先確認職能存在且屬於本組織
	if _, err := h.jobFunctionService.GetJobFunctionByID(ctx, orgID, id); err != nil {
		response.AbortWithError(c, err)
		return
	}

	schedules, err := h.scheduleService.ActiveSchedulesForJobFunction(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedules)
}

// Delete 刪除職能
// @Summary 刪除職能
// @Tags JobFunction
// @Security BearerAuth
// @Produce json
// @Param jobFunctionID path string true "JobFunction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /job-functions/{jobFunctionID} [delete]
func (h *JobFunctionHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "jobFunctionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.jobFunctionService.DeleteJobFunctionByID(ctx, orgID, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Job function deleted"})
}
