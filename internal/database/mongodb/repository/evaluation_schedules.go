package repository

import (
	"context"
	"fmt"
	"time"

	"simpleeval/internal/core"
	client "simpleeval/internal/database/client"
	"simpleeval/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EvaluationScheduleRepository struct {
	collection *mongo.Collection
}

func NewEvaluationScheduleRepository(mongoClient *client.MongoClient) *EvaluationScheduleRepository {
	repository := &EvaluationScheduleRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionSchedules)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EvaluationScheduleRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EvaluationScheduleIndexes)
	return nil
}

func (repository *EvaluationScheduleRepository) Create(contextValue context.Context, schedule *model.EvaluationSchedule) (_ *model.EvaluationSchedule, returnedError error) {
	nowUTC := time.Now().UTC()
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
	}
	schedule.CreatedAt = nowUTC
	schedule.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, schedule)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	schedule.ID = objectID
	return schedule, nil
}

func (repository *EvaluationScheduleRepository) GetByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID) (_ *model.EvaluationSchedule, returnedError error) {
	var schedule model.EvaluationSchedule
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": scheduleIdentifier}).Decode(&schedule); returnedError != nil {
		return nil, returnedError
	}
	return &schedule, nil
}

// ListByOrganization 依 updatedAt 由新到舊排序，status 為空字串時不過濾
func (repository *EvaluationScheduleRepository) ListByOrganization(contextValue context.Context, organizationIdentifier primitive.ObjectID, status core.ScheduleStatus) (_ []*model.EvaluationSchedule, returnedError error) {
	filter := bson.M{"organizationId": organizationIdentifier}
	if status != "" {
		filter["status"] = status
	}
	cursor, findError := repository.collection.Find(
		contextValue,
		filter,
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.EvaluationSchedule
	for cursor.Next(contextValue) {
		var schedule model.EvaluationSchedule
		if decodeError := cursor.Decode(&schedule); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &schedule)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EvaluationScheduleRepository) UpdateByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": scheduleIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EvaluationScheduleRepository) DeleteByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": scheduleIdentifier})
	return returnedError
}

// UpdateStatus 僅在目前狀態等於 expected 時改寫，避免兩個請求同時轉移狀態
func (repository *EvaluationScheduleRepository) UpdateStatus(contextValue context.Context, scheduleIdentifier primitive.ObjectID, expected core.ScheduleStatus, next core.ScheduleStatus) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(
		contextValue,
		bson.M{"_id": scheduleIdentifier, "status": expected},
		withUpdatedAt(bson.M{"$set": bson.M{"status": next}}),
	)
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EvaluationScheduleRepository) ListActiveByJobFunction(contextValue context.Context, organizationIdentifier primitive.ObjectID, jobFunctionIdentifier primitive.ObjectID) (_ []*model.EvaluationSchedule, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"organizationId": organizationIdentifier,
		"status":         core.ScheduleStatusActive,
		"jobFunctionIds": jobFunctionIdentifier,
	})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.EvaluationSchedule
	for cursor.Next(contextValue) {
		var schedule model.EvaluationSchedule
		if decodeError := cursor.Decode(&schedule); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &schedule)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// ListActive 全組織不限定，提醒排程器掃描用
func (repository *EvaluationScheduleRepository) ListActive(contextValue context.Context) (_ []*model.EvaluationSchedule, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{"status": core.ScheduleStatusActive})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.EvaluationSchedule
	for cursor.Next(contextValue) {
		var schedule model.EvaluationSchedule
		if decodeError := cursor.Decode(&schedule); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &schedule)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EvaluationScheduleRepository) CountByStatus(contextValue context.Context, organizationIdentifier primitive.ObjectID, status core.ScheduleStatus) (returnedCount int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"organizationId": organizationIdentifier, "status": status})
}
