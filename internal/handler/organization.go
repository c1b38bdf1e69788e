package handler

import (
	"simpleeval/internal/dto"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	trace      *telemetry.Trace
	orgService *service.OrganizationService
}

func NewOrganizationHandler(trace *telemetry.Trace, orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{trace: trace, orgService: orgService}
}

// Get 取得自身組織
// @Summary 取得目前登入者的組織
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.OrganizationResponseDto
// @Failure 404 {object} map[string]string
// @Router /organization [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	organization, err := h.orgService.GetOrganization(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, organization)
}

// Update 更新組織
// @Summary 更新組織名稱與席次
// @Tags Organization
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateOrganizationDto true "組織更新資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /organization [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	var req dto.UpdateOrganizationDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.orgService.UpdateOrganization(ctx, orgID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Organization updated"})
}
