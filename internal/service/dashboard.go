package service

import (
	"context"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardService struct {
	trace          *telemetry.Trace
	employeeRepo   *repository.EmployeeRepository
	scheduleRepo   *repository.EvaluationScheduleRepository
	evaluationRepo *repository.EvaluationRepository
}

func NewDashboardService(
	trace *telemetry.Trace,
	employeeRepo *repository.EmployeeRepository,
	scheduleRepo *repository.EvaluationScheduleRepository,
	evaluationRepo *repository.EvaluationRepository,
) *DashboardService {
	return &DashboardService{
		trace:          trace,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		evaluationRepo: evaluationRepo,
	}
}

// Stats 儀表板統計：員工數、生效排程數、待處理評核數
func (s *DashboardService) Stats(ctx context.Context, orgID primitive.ObjectID) (*dto.DashboardStatsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employeeCount, err := s.employeeRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByOrganization error")
	}
	activeSchedules, err := s.scheduleRepo.CountByStatus(ctx, orgID, core.ScheduleStatusActive)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByStatus error")
	}
	pendingEvaluations, err := s.evaluationRepo.CountByStatus(ctx, orgID, core.EvaluationStatusPending)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByStatus error")
	}

	return &dto.DashboardStatsDto{
		EmployeeCount:      employeeCount,
		ActiveSchedules:    activeSchedules,
		PendingEvaluations: pendingEvaluations,
	}, nil
}
