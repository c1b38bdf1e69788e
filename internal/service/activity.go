package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	feedLimit            = 10
	fallbackEvaluations  = 5
	fallbackEmployees    = 3
	feedSourceActivities = "activities"
	feedSourceFallback   = "fallback"
)

type ActivityService struct {
	trace          *telemetry.Trace
	logger         *zap.Logger
	metric         *telemetry.Metric
	activityRepo   *repository.ActivityRepository
	evaluationRepo *repository.EvaluationRepository
	employeeRepo   *repository.EmployeeRepository
}

func NewActivityService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	metric *telemetry.Metric,
	activityRepo *repository.ActivityRepository,
	evaluationRepo *repository.EvaluationRepository,
	employeeRepo *repository.EmployeeRepository,
) *ActivityService {
	return &ActivityService{
		trace:          trace,
		logger:         logger,
		metric:         metric,
		activityRepo:   activityRepo,
		evaluationRepo: evaluationRepo,
		employeeRepo:   employeeRepo,
	}
}

// Track 寫入活動事件。事件是輔助資料，失敗只記 log 不回傳錯誤給主流程。
func (s *ActivityService) Track(ctx context.Context, activity *model.Activity) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to record activity",
			zap.String("type", string(activity.Type)),
			zap.Error(err))
		return
	}
	if s.metric.ActivitiesTotal != nil {
		s.metric.ActivitiesTotal.WithLabelValues(string(activity.Type)).Inc()
	}
}

// TrackEmployeeAdded 員工新增事件
func (s *ActivityService) TrackEmployeeAdded(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, employee *model.Employee) {
	s.Track(ctx, &model.Activity{
		OrganizationID: orgID,
		UserID:         userID,
		UserName:       userName,
		Type:           core.ActivityEmployeeAdded,
		Title:          "Employee added",
		Description:    fmt.Sprintf("%s was added to the organization", employee.FullName),
		Link:           "/employees/" + employee.ID.Hex(),
		EntityID:       &employee.ID,
		Timestamp:      time.Now().UTC(),
	})
}

// TrackEmployeesImported 批次匯入摘要事件（整批一筆）
func (s *ActivityService) TrackEmployeesImported(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, jobID primitive.ObjectID, imported int, skipped int) {
	s.Track(ctx, &model.Activity{
		OrganizationID: orgID,
		UserID:         userID,
		UserName:       userName,
		Type:           core.ActivityEmployeesImported,
		Title:          "Employees imported",
		Description:    fmt.Sprintf("%d employees imported, %d skipped", imported, skipped),
		EntityID:       &jobID,
		Metadata:       map[string]any{"imported": imported, "skipped": skipped},
		Timestamp:      time.Now().UTC(),
	})
}

// TrackJobFunctionAdded 職能新增事件
func (s *ActivityService) TrackJobFunctionAdded(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, jobFunction *model.JobFunction) {
	s.Track(ctx, &model.Activity{
		OrganizationID: orgID,
		UserID:         userID,
		UserName:       userName,
		Type:           core.ActivityJobFunctionAdded,
		Title:          "Job function added",
		Description:    fmt.Sprintf("Job function %q was created", jobFunction.Name),
		EntityID:       &jobFunction.ID,
		Timestamp:      time.Now().UTC(),
	})
}

// TrackQuestionAdded 題目新增事件
func (s *ActivityService) TrackQuestionAdded(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, question *model.Question) {
	s.Track(ctx, &model.Activity{
		OrganizationID: orgID,
		UserID:         userID,
		UserName:       userName,
		Type:           core.ActivityQuestionAdded,
		Title:          "Question added",
		Description:    "A new evaluation question was created",
		EntityID:       &question.ID,
		Timestamp:      time.Now().UTC(),
	})
}

// TrackEvaluationCreated 評核單建立事件
func (s *ActivityService) TrackEvaluationCreated(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, evaluation *model.Evaluation) {
	s.Track(ctx, &model.Activity{
		OrganizationID: orgID,
		UserID:         userID,
		UserName:       userName,
		Type:           core.ActivityEvaluationCreated,
		Title:          "Evaluation created",
		Description:    fmt.Sprintf("Evaluation for %s was created", evaluation.EmployeeName),
		EntityID:       &evaluation.ID,
		Timestamp:      time.Now().UTC(),
	})
}

// RecentFeed 活動牆：取最新 10 筆事件；讀取失敗或一筆都沒有時改以最近的評核單與員工合成
func (s *ActivityService) RecentFeed(ctx context.Context, orgID primitive.ObjectID) (*dto.ActivityFeedResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	var returnedError error
	defer func() { end(returnedError) }()

	activities, err := s.activityRepo.ListRecent(ctx, orgID, feedLimit)
	if err != nil {
		// 主路徑失敗不擋牆面，記 log 後改走 fallback
		s.logger.Warn("activity feed primary read failed", zap.Error(err))
		activities = nil
	}
	if len(activities) > 0 {
		resp := &dto.ActivityFeedResponseDto{
			Source:     feedSourceActivities,
			Activities: make([]dto.ActivityResponseDto, len(activities)),
		}
		for i, a := range activities {
			resp.Activities[i] = modelToActivityResponseDto(a)
		}
		s.trace.ApplyTraceAttributes(span, core.TraceActivityFeedMeta{
			OrganizationID: orgID.Hex(),
			Source:         feedSourceActivities,
			ResultCount:    len(resp.Activities),
		})
		return resp, nil
	}

	// fallback：5 筆最新評核單 + 3 筆最新員工，合併後依時間新到舊。
	// 單一來源失敗只略過該來源，兩個來源都失敗才回錯誤。
	evaluations, evalErr := s.evaluationRepo.ListRecent(ctx, orgID, fallbackEvaluations)
	if evalErr != nil {
		s.logger.Warn("feed fallback evaluations read failed", zap.Error(evalErr))
		evaluations = nil
	}
	employees, empErr := s.employeeRepo.ListRecent(ctx, orgID, fallbackEmployees)
	if empErr != nil {
		s.logger.Warn("feed fallback employees read failed", zap.Error(empErr))
		employees = nil
	}
	if evalErr != nil && empErr != nil {
		returnedError = cErr.DatabaseError("activity feed unavailable")
		return nil, returnedError
	}

	merged := MergeFeed(evaluations, employees)
	if s.metric.FeedFallbackTotal != nil {
		s.metric.FeedFallbackTotal.WithLabelValues("ok").Inc()
	}
	s.trace.ApplyTraceAttributes(span, core.TraceActivityFeedMeta{
		OrganizationID: orgID.Hex(),
		Source:         feedSourceFallback,
		ResultCount:    len(merged),
	})
	return &dto.ActivityFeedResponseDto{Source: feedSourceFallback, Activities: merged}, nil
}

// MergeFeed 將評核單與員工合成活動項目並依時間新到舊排序（穩定排序，同刻保持輸入順序）
func MergeFeed(evaluations []*model.Evaluation, employees []*model.Employee) []dto.ActivityResponseDto {
	merged := make([]dto.ActivityResponseDto, 0, len(evaluations)+len(employees))
	for _, e := range evaluations {
		merged = append(merged, dto.ActivityResponseDto{
			ID:          e.ID.Hex(),
			Type:        core.ActivityEvaluationCreated,
			Title:       "Evaluation created",
			Description: fmt.Sprintf("Evaluation for %s was created", e.EmployeeName),
			EntityID:    e.ID.Hex(),
			Timestamp:   e.CreatedAt,
		})
	}
	for _, e := range employees {
		merged = append(merged, dto.ActivityResponseDto{
			ID:          e.ID.Hex(),
			Type:        core.ActivityEmployeeAdded,
			Title:       "Employee added",
			Description: fmt.Sprintf("%s was added to the organization", e.FullName),
			Link:        "/employees/" + e.ID.Hex(),
			EntityID:    e.ID.Hex(),
			Timestamp:   e.CreatedAt,
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged
}

func modelToActivityResponseDto(m *model.Activity) dto.ActivityResponseDto {
	resp := dto.ActivityResponseDto{
		ID:          m.ID.Hex(),
		UserName:    m.UserName,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		Timestamp:   m.Timestamp,
	}
	if !m.UserID.IsZero() {
		resp.UserID = m.UserID.Hex()
	}
	if m.EntityID != nil {
		resp.EntityID = m.EntityID.Hex()
	}
	return resp
}
