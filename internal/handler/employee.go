package handler

import (
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
	importerService *service.ImporterService
}

func NewEmployeeHandler(
	trace *telemetry.Trace,
	employeeService *service.EmployeeService,
	importerService *service.ImporterService,
) *EmployeeHandler {
	return &EmployeeHandler{
		trace:           trace,
		employeeService: employeeService,
		importerService: importerService,
	}
}

// List 員工列表
// @Summary 取得組織內員工列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 500 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	employees, err := h.employeeService.ListEmployees(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// Get 取得員工
// @Summary 取得單一員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Create 新增員工
// @Summary 新增員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資訊"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
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

	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.employeeService.CreateEmployee(ctx, orgID, userID, userNameFromContext(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新員工
// @Summary 更新員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "員工更新資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.UpdateEmployeeByID(ctx, orgID, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Employee updated"})
}

// Delete 刪除員工
// @Summary 刪除員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{employeeID} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.DeleteEmployeeByID(ctx, orgID, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Employee deleted"})
}

// Import CSV 匯入
// @Summary 以 CSV 批次匯入員工
// @Tags Employee
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV 檔案（fullName,email,phone,role,supervisorEmail）"
// @Success 200 {object} dto.ImportResultDto
// @Failure 400 {object} map[string]string
// @Router /employees/import [post]
func (h *EmployeeHandler) Import(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestBody("missing file field"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestBody("cannot open uploaded file"))
		return
	}
	defer file.Close()

	res, err := h.importerService.Import(ctx, orgID, userID, userNameFromContext(c), fileHeader.Filename, file)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// PreviewImport CSV 預覽
// @Summary 預覽 CSV 匯入內容（不寫入）
// @Tags Employee
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV 檔案（fullName,email,phone,role,supervisorEmail）"
// @Success 200 {object} dto.ImportPreviewDto
// @Failure 400 {object} map[string]string
// @Router /employees/import/preview [post]
func (h *EmployeeHandler) PreviewImport(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, err := orgIDFromContext(c); err != nil {
		response.AbortWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestBody("missing file field"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestBody("cannot open uploaded file"))
		return
	}
	defer file.Close()

	res, err := h.importerService.Preview(ctx, file)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// GetImportJob 匯入紀錄
// @Summary 查詢匯入工作狀態
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param jobID path string true "Import Job ID"
// @Success 200 {object} dto.ImportJobResponseDto
// @Failure 404 {object} map[string]string
// @Router /employees/import/{jobID} [get]
func (h *EmployeeHandler) GetImportJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, err := orgIDFromContext(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "jobID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	job, err := h.importerService.GetImportJob(ctx, orgID, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, job)
}
