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
)

type JobFunctionService struct {
	trace           *telemetry.Trace
	jobFunctionRepo *repository.JobFunctionRepository
	activityService *ActivityService
}

func NewJobFunctionService(
	trace *telemetry.Trace,
	jobFunctionRepo *repository.JobFunctionRepository,
	activityService *ActivityService,
) *JobFunctionService {
	return &JobFunctionService{
		trace:           trace,
		jobFunctionRepo: jobFunctionRepo,
		activityService: activityService,
	}
}

// 建立職能；同組織名稱重複回 409
func (s *JobFunctionService) CreateJobFunction(ctx context.Context, orgID primitive.ObjectID, in *dto.CreateJobFunctionDto) (*dto.JobFunctionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.jobFunctionRepo.GetByName(ctx, orgID, in.Name); err == nil {
		return nil, cErr.Conflict(fmt.Sprintf("job function %q already exists", in.Name))
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database GetByName error")
	}

	jobFunction := &model.JobFunction{
		OrganizationID: orgID,
		Name:           in.Name,
	}
	if in.ManagerID != "" {
		managerID, err := primitive.ObjectIDFromHex(in.ManagerID)
		if err != nil {
			return nil, cErr.BadRequestBody("invalid managerId")
		}
		jobFunction.ManagerID = &managerID
	}

	created, err := s.jobFunctionRepo.Create(ctx, jobFunction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(fmt.Sprintf("job function %q already exists", in.Name))
		}
		return nil, cErr.DatabaseError("database CreateJobFunction error")
	}
	return modelToJobFunctionResponseDto(created), nil
}

// 列出組織內全部職能（名稱排序）
func (s *JobFunctionService) ListJobFunctions(ctx context.Context, orgID primitive.ObjectID) ([]*dto.JobFunctionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	jobFunctions, err := s.jobFunctionRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListJobFunctions error")
	}
	resp := make([]*dto.JobFunctionResponseDto, len(jobFunctions))
	for i, jf := range jobFunctions {
		resp[i] = modelToJobFunctionResponseDto(jf)
	}
	return resp, nil
}

// 依 id 查詢；跨組織存取視為不存在
func (s *JobFunctionService) GetJobFunctionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*dto.JobFunctionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	jobFunction, err := s.jobFunctionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("job function not found")
		}
		return nil, cErr.DatabaseError("database GetJobFunctionByID error")
	}
	if jobFunction.OrganizationID != orgID {
		return nil, cErr.NotFound("job function not found")
	}
	return modelToJobFunctionResponseDto(jobFunction), nil
}

// 更新職能
func (s *JobFunctionService) UpdateJobFunctionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID, in *dto.UpdateJobFunctionDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetJobFunctionByID(ctx, orgID, id); err != nil {
		return err
	}

	update := bson.M{}
	if in.Name != nil {
		existing, err := s.jobFunctionRepo.GetByName(ctx, orgID, *in.Name)
		if err == nil && existing.ID != id {
			return cErr.Conflict(fmt.Sprintf("job function %q already exists", *in.Name))
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.DatabaseError("database GetByName error")
		}
		update["name"] = *in.Name
	}
	if in.ManagerID != nil {
		if *in.ManagerID == "" {
			update["managerId"] = nil
		} else {
			managerID, err := primitive.ObjectIDFromHex(*in.ManagerID)
			if err != nil {
				return cErr.BadRequestBody("invalid managerId")
			}
			update["managerId"] = managerID
		}
	}
	if len(update) == 0 {
		return nil
	}

	matchedCount, err := s.jobFunctionRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("job function not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return cErr.Conflict("job function name already exists")
		}
		return cErr.DatabaseError("database UpdateJobFunctionByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound("job function not found")
	}
	return nil
}

// 刪除職能
func (s *JobFunctionService) DeleteJobFunctionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetJobFunctionByID(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.jobFunctionRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteJobFunctionByID error")
	}
	return nil
}

func modelToJobFunctionResponseDto(m *model.JobFunction) *dto.JobFunctionResponseDto {
	resp := &dto.JobFunctionResponseDto{
		ID:             m.ID.Hex(),
		OrganizationID: m.OrganizationID.Hex(),
		Name:           m.Name,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.ManagerID != nil {
		resp.ManagerID = m.ManagerID.Hex()
	}
	return resp
}
