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

type QuestionRepository struct {
	collection *mongo.Collection
}

func NewQuestionRepository(mongoClient *client.MongoClient) *QuestionRepository {
	repository := &QuestionRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionQuestions)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *QuestionRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.QuestionIndexes)
	return nil
}

func (repository *QuestionRepository) Create(contextValue context.Context, question *model.Question) (_ *model.Question, returnedError error) {
	nowUTC := time.Now().UTC()
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	question.CreatedAt = nowUTC
	question.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, question)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	question.ID = objectID
	return question, nil
}

func (repository *QuestionRepository) GetByID(contextValue context.Context, questionIdentifier primitive.ObjectID) (_ *model.Question, returnedError error) {
	var question model.Question
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": questionIdentifier}).Decode(&question); returnedError != nil {
		return nil, returnedError
	}
	return &question, nil
}

// ListByOrganization 依 jobFunctionIdentifier 過濾為選配，為零值時列出全組織題目
func (repository *QuestionRepository) ListByOrganization(contextValue context.Context, organizationIdentifier primitive.ObjectID, jobFunctionIdentifier primitive.ObjectID) (_ []*model.Question, returnedError error) {
	filter := bson.M{"organizationId": organizationIdentifier}
	if !jobFunctionIdentifier.IsZero() {
		filter["jobFunctionIds"] = jobFunctionIdentifier
	}
	cursor, findError := repository.collection.Find(
		contextValue,
		filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Question
	for cursor.Next(contextValue) {
		var question model.Question
		if decodeError := cursor.Decode(&question); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &question)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *QuestionRepository) UpdateByID(contextValue context.Context, questionIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": questionIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *QuestionRepository) DeleteByID(contextValue context.Context, questionIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": questionIdentifier})
	return returnedError
}
