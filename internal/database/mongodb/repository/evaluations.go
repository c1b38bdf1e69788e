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

type EvaluationRepository struct {
	collection *mongo.Collection
}

func NewEvaluationRepository(mongoClient *client.MongoClient) *EvaluationRepository {
	repository := &EvaluationRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionEvaluations)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EvaluationRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EvaluationIndexes)
	return nil
}

func (repository *EvaluationRepository) Create(contextValue context.Context, evaluation *model.Evaluation) (_ *model.Evaluation, returnedError error) {
	nowUTC := time.Now().UTC()
	if evaluation.ID.IsZero() {
		evaluation.ID = primitive.NewObjectID()
	}
	evaluation.CreatedAt = nowUTC
	evaluation.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, evaluation)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	evaluation.ID = objectID
	return evaluation, nil
}

// ListRecent 取最近建立的評核單，活動牆 fallback 來源之一
func (repository *EvaluationRepository) ListRecent(contextValue context.Context, organizationIdentifier primitive.ObjectID, limit int64) (_ []*model.Evaluation, returnedError error) {
	cursor, findError := repository.collection.Find(
		contextValue,
		bson.M{"organizationId": organizationIdentifier},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Evaluation
	for cursor.Next(contextValue) {
		var evaluation model.Evaluation
		if decodeError := cursor.Decode(&evaluation); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &evaluation)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EvaluationRepository) CountByStatus(contextValue context.Context, organizationIdentifier primitive.ObjectID, status core.EvaluationStatus) (returnedCount int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"organizationId": organizationIdentifier, "status": status})
}
