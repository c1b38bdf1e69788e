package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	userRepo         *UserRepository
	organizationRepo *OrganizationRepository
	employeeRepo     *EmployeeRepository
	jobFunctionRepo  *JobFunctionRepository
	questionRepo     *QuestionRepository
	scheduleRepo     *EvaluationScheduleRepository
	evaluationRepo   *EvaluationRepository
	activityRepo     *ActivityRepository
	importJobRepo    *ImportJobRepository
}

func NewMongoDBRepository(
	userRepo *UserRepository,
	organizationRepo *OrganizationRepository,
	employeeRepo *EmployeeRepository,
	jobFunctionRepo *JobFunctionRepository,
	questionRepo *QuestionRepository,
	scheduleRepo *EvaluationScheduleRepository,
	evaluationRepo *EvaluationRepository,
	activityRepo *ActivityRepository,
	importJobRepo *ImportJobRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		userRepo:         userRepo,
		organizationRepo: organizationRepo,
		employeeRepo:     employeeRepo,
		jobFunctionRepo:  jobFunctionRepo,
		questionRepo:     questionRepo,
		scheduleRepo:     scheduleRepo,
		evaluationRepo:   evaluationRepo,
		activityRepo:     activityRepo,
		importJobRepo:    importJobRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewUserRepository,
	NewOrganizationRepository,
	NewEmployeeRepository,
	NewJobFunctionRepository,
	NewQuestionRepository,
	NewEvaluationScheduleRepository,
	NewEvaluationRepository,
	NewActivityRepository,
	NewImportJobRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
