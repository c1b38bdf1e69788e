package service

import (
	"context"
	"errors"

	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionService struct {
	trace           *telemetry.Trace
	questionRepo    *repository.QuestionRepository
	activityService *ActivityService
}

func NewQuestionService(
	trace *telemetry.Trace,
	questionRepo *repository.QuestionRepository,
	activityService *ActivityService,
) *QuestionService {
	return &QuestionService{
		trace:           trace,
		questionRepo:    questionRepo,
		activityService: activityService,
	}
}

// ClampPercentage 夾制評分百分比到 [0,100]
func ClampPercentage(percentage int) int {
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}

// 建立題目；等級百分比寫入前一律夾制
func (s *QuestionService) CreateQuestion(ctx context.Context, orgID primitive.ObjectID, in *dto.CreateQuestionDto) (*dto.QuestionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if len(in.JobFunctionIDs) == 0 {
		return nil, cErr.BadRequestBody("at least one jobFunctionId is required")
	}
	jobFunctionIDs, err := hexToObjectIDs(in.JobFunctionIDs)
	if err != nil {
		return nil, cErr.BadRequestBody("invalid jobFunctionIds")
	}

	question := &model.Question{
		OrganizationID:     orgID,
		Text:               in.Text,
		JobFunctionIDs:     jobFunctionIDs,
		EvaluationCriteria: criteriaDtoToModel(&in.EvaluationCriteria),
		RewardValue:        in.RewardValue,
	}
	created, err := s.questionRepo.Create(ctx, question)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateQuestion error")
	}
	return modelToQuestionResponseDto(created), nil
}

// 列出題目，可選擇依職能過濾
func (s *QuestionService) ListQuestions(ctx context.Context, orgID primitive.ObjectID, jobFunctionID primitive.ObjectID) ([]*dto.QuestionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	questions, err := s.questionRepo.ListByOrganization(ctx, orgID, jobFunctionID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListQuestions error")
	}
	resp := make([]*dto.QuestionResponseDto, len(questions))
	for i, q := range questions {
		resp[i] = modelToQuestionResponseDto(q)
	}
	return resp, nil
}

// 依 id 查詢；跨組織存取視為不存在
func (s *QuestionService) GetQuestionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*dto.QuestionResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("question not found")
		}
		return nil, cErr.DatabaseError("database GetQuestionByID error")
	}
	if question.OrganizationID != orgID {
		return nil, cErr.NotFound("question not found")
	}
	return modelToQuestionResponseDto(question), nil
}

// 更新題目
func (s *QuestionService) UpdateQuestionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID, in *dto.UpdateQuestionDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetQuestionByID(ctx, orgID, id); err != nil {
		return err
	}

	update := bson.M{}
	if in.Text != nil {
		update["text"] = *in.Text
	}
	if in.JobFunctionIDs != nil {
		if len(*in.JobFunctionIDs) == 0 {
			return cErr.BadRequestBody("at least one jobFunctionId is required")
		}
		jobFunctionIDs, err := hexToObjectIDs(*in.JobFunctionIDs)
		if err != nil {
			return cErr.BadRequestBody("invalid jobFunctionIds")
		}
		update["jobFunctionIds"] = jobFunctionIDs
	}
	if in.EvaluationCriteria != nil {
		update["evaluationCriteria"] = criteriaDtoToModel(in.EvaluationCriteria)
	}
	if in.RewardValue != nil {
		update["rewardValue"] = *in.RewardValue
	}
	if len(update) == 0 {
		return nil
	}

	matchedCount, err := s.questionRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("question not found")
		}
		return cErr.DatabaseError("database UpdateQuestionByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound("question not found")
	}
	return nil
}

// 刪除題目
func (s *QuestionService) DeleteQuestionByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetQuestionByID(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.questionRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteQuestionByID error")
	}
	return nil
}

func criteriaDtoToModel(in *dto.EvaluationCriteriaDto) model.EvaluationCriteria {
	criteria := model.EvaluationCriteria{
		Type:   in.Type,
		Levels: make([]model.CriteriaLevel, len(in.Levels)),
	}
	for i, level := range in.Levels {
		criteria.Levels[i] = model.CriteriaLevel{
			Name:       level.Name,
			Percentage: ClampPercentage(level.Percentage),
		}
	}
	return criteria
}

func criteriaModelToDto(in *model.EvaluationCriteria) dto.EvaluationCriteriaDto {
	criteria := dto.EvaluationCriteriaDto{
		Type:   in.Type,
		Levels: make([]dto.CriteriaLevelDto, len(in.Levels)),
	}
	for i, level := range in.Levels {
		criteria.Levels[i] = dto.CriteriaLevelDto{
			Name:       level.Name,
			Percentage: level.Percentage,
		}
	}
	return criteria
}

func modelToQuestionResponseDto(m *model.Question) *dto.QuestionResponseDto {
	return &dto.QuestionResponseDto{
		ID:                 m.ID.Hex(),
		OrganizationID:     m.OrganizationID.Hex(),
		Text:               m.Text,
		JobFunctionIDs:     objectIDsToHex(m.JobFunctionIDs),
		EvaluationCriteria: criteriaModelToDto(&m.EvaluationCriteria),
		RewardValue:        m.RewardValue,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
