package service

import (
	"context"
	"errors"
	"fmt"

	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type EmployeeService struct {
	trace           *telemetry.Trace
	logger          *zap.Logger
	employeeRepo    *repository.EmployeeRepository
	orgRepo         *repository.OrganizationRepository
	activityService *ActivityService
}

func NewEmployeeService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	employeeRepo *repository.EmployeeRepository,
	orgRepo *repository.OrganizationRepository,
	activityService *ActivityService,
) *EmployeeService {
	return &EmployeeService{
		trace:           trace,
		logger:          logger,
		employeeRepo:    employeeRepo,
		orgRepo:         orgRepo,
		activityService: activityService,
	}
}

// 建立員工；同組織 email 重複回 409
func (s *EmployeeService) CreateEmployee(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, in *dto.CreateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	email := normalizeEmail(in.Email)
	existing, err := s.employeeRepo.FindByEmails(ctx, orgID, []string{email})
	if err != nil {
		return nil, cErr.DatabaseError("database FindByEmails error")
	}
	if len(existing) > 0 {
		return nil, cErr.Conflict(fmt.Sprintf("employee with email %s already exists", email))
	}

	jobFunctionIDs, err := hexToObjectIDs(in.JobFunctionIDs)
	if err != nil {
		return nil, cErr.BadRequestBody("invalid jobFunctionIds")
	}

	employee := &model.Employee{
		OrganizationID:  orgID,
		FullName:        in.FullName,
		Email:           email,
		Phone:           in.Phone,
		Role:            in.Role,
		SupervisorEmail: normalizeEmail(in.SupervisorEmail),
		JobFunctionIDs:  jobFunctionIDs,
	}
	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(fmt.Sprintf("employee with email %s already exists", email))
		}
		return nil, cErr.DatabaseError("database CreateEmployee error")
	}

	if _, err := s.orgRepo.IncrementUsedSeats(ctx, orgID, 1); err != nil {
		s.logger.Warn("failed to increment used seats", zap.Error(err))
	}
	s.activityService.TrackEmployeeAdded(ctx, orgID, userID, userName, created)

	return modelToEmployeeResponseDto(created), nil
}

// 列出組織內全部員工（新到舊）
func (s *EmployeeService) ListEmployees(ctx context.Context, orgID primitive.ObjectID) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.employeeRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListEmployees error")
	}
	resp := make([]*dto.EmployeeResponseDto, len(employees))
	for i, e := range employees {
		resp[i] = modelToEmployeeResponseDto(e)
	}
	return resp, nil
}

// 依 id 查詢；跨組織存取視為不存在
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("employee not found")
		}
		return nil, cErr.DatabaseError("database GetEmployeeByID error")
	}
	if employee.OrganizationID != orgID {
		return nil, cErr.NotFound("employee not found")
	}
	return modelToEmployeeResponseDto(employee), nil
}

// 更新員工
func (s *EmployeeService) UpdateEmployeeByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID, in *dto.UpdateEmployeeDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// 先確認歸屬，避免跨組織改寫
	if _, err := s.GetEmployeeByID(ctx, orgID, id); err != nil {
		return err
	}

	update := bson.M{}
	if in.FullName != nil {
		update["fullName"] = *in.FullName
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		existing, err := s.employeeRepo.FindByEmails(ctx, orgID, []string{email})
		if err != nil {
			return cErr.DatabaseError("database FindByEmails error")
		}
		if len(existing) > 0 && existing[0].ID != id {
			return cErr.Conflict(fmt.Sprintf("employee with email %s already exists", email))
		}
		update["email"] = email
	}
	if in.Phone != nil {
		update["phone"] = *in.Phone
	}
	if in.Role != nil {
		update["role"] = *in.Role
	}
	if in.SupervisorEmail != nil {
		update["supervisorEmail"] = normalizeEmail(*in.SupervisorEmail)
	}
	if in.JobFunctionIDs != nil {
		jobFunctionIDs, err := hexToObjectIDs(*in.JobFunctionIDs)
		if err != nil {
			return cErr.BadRequestBody("invalid jobFunctionIds")
		}
		update["jobFunctionIds"] = jobFunctionIDs
	}
	if len(update) == 0 {
		return nil
	}

	matchedCount, err := s.employeeRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("employee not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return cErr.Conflict("employee email already exists")
		}
		return cErr.DatabaseError("database UpdateEmployeeByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound("employee not found")
	}
	return nil
}

// 刪除員工並釋放席次
func (s *EmployeeService) DeleteEmployeeByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetEmployeeByID(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteEmployeeByID error")
	}
	if _, err := s.orgRepo.IncrementUsedSeats(ctx, orgID, -1); err != nil {
		s.logger.Warn("failed to decrement used seats", zap.Error(err))
	}
	return nil
}

func modelToEmployeeResponseDto(m *model.Employee) *dto.EmployeeResponseDto {
	return &dto.EmployeeResponseDto{
		ID:              m.ID.Hex(),
		OrganizationID:  m.OrganizationID.Hex(),
		FullName:        m.FullName,
		Email:           m.Email,
		Phone:           m.Phone,
		Role:            m.Role,
		SupervisorEmail: m.SupervisorEmail,
		JobFunctionIDs:  objectIDsToHex(m.JobFunctionIDs),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
