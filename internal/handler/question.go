package handler

import (
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionHandler struct {
	trace           *telemetry.Trace
	questionService *service.QuestionService
}

func NewQuestionHandler(trace *telemetry.Trace, questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{trace: trace, questionService: questionService}
}

// List 題目列表
// @Summary 取得題目列表，可依職能過濾
// @Tags Question
// @Security BearerAuth
// @Produce json
// @Param jobFunctionId query string false "職能 ID"
// @Success 200 {array} dto.QuestionResponseDto
// @Failure 500 {object} map[string]string
// @Router /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	jobFunctionID := primitive.NilObjectID
	if hexID := c.Query("jobFunctionId"); hexID != "" {
		jobFunctionID, err = primitive.ObjectIDFromHex(hexID)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("invalid jobFunctionId"))
			return
		}
	}

	questions, err := h.questionService.ListQuestions(ctx, orgID, jobFunctionID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, questions)
}

// Get 取得題目
// @Summary 取得單一題目
// @Tags Question
// @Security BearerAuth
// @Produce json
// @Param questionID path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDto
// @Failure 404 {object} map[string]string
// @Router /questions/{questionID} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "questionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	question, err := h.questionService.GetQuestionByID(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, question)
}

// Create 新增題目
// @Summary 新增題目
// @Tags Question
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateQuestionDto true "題目資訊"
// @Success 201 {object} dto.QuestionResponseDto
// @Failure 400 {object} map[string]string
// @Router /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	var req dto.CreateQuestionDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.questionService.CreateQuestion(ctx, orgID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新題目
// @Summary 更新題目
// @Tags Question
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param questionID path string true "Question ID"
// @Param body body dto.UpdateQuestionDto true "題目更新資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /questions/{questionID} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "questionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateQuestionDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.questionService.UpdateQuestionByID(ctx, orgID, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Question updated"})
}

// Delete 刪除題目
// @Summary 刪除題目
// @Tags Question
// @Security BearerAuth
// @Produce json
// @Param questionID path string true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /questions/{questionID} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "questionID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.questionService.DeleteQuestionByID(ctx, orgID, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Question deleted"})
}
