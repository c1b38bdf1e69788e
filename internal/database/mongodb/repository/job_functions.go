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

type JobFunctionRepository struct {
	collection *mongo.Collection
}

func NewJobFunctionRepository(mongoClient *client.MongoClient) *JobFunctionRepository {
	repository := &JobFunctionRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionJobFunctions)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *JobFunctionRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.JobFunctionIndexes)
	return nil
}

func (repository *JobFunctionRepository) Create(contextValue context.Context, jobFunction *model.JobFunction) (_ *model.JobFunction, returnedError error) {
	nowUTC := time.Now().UTC()
	if jobFunction.ID.IsZero() {
		jobFunction.ID = primitive.NewObjectID()
	}
	jobFunction.CreatedAt = nowUTC
	jobFunction.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, jobFunction)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	jobFunction.ID = objectID
	return jobFunction, nil
}

func (repository *JobFunctionRepository) GetByID(contextValue context.Context, jobFunctionIdentifier primitive.ObjectID) (_ *model.JobFunction, returnedError error) {
	var jobFunction model.JobFunction
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": jobFunctionIdentifier}).Decode(&jobFunction); returnedError != nil {
		return nil, returnedError
	}
	return &jobFunction, nil
}

// GetByName 同組織內以名稱查詢，供建立前的重複預查
func (repository *JobFunctionRepository) GetByName(contextValue context.Context, organizationIdentifier primitive.ObjectID, name string) (_ *model.JobFunction, returnedError error) {
	var jobFunction model.JobFunction
	filter := bson.M{"organizationId": organizationIdentifier, "name": name}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&jobFunction); returnedError != nil {
		return nil, returnedError
	}
	return &jobFunction, nil
}

func (repository *JobFunctionRepository) ListByOrganization(contextValue context.Context, organizationIdentifier primitive.ObjectID) (_ []*model.JobFunction, returnedError error) {
	cursor, findError := repository.collection.Find(
		contextValue,
		bson.M{"organizationId": organizationIdentifier},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.JobFunction
	for cursor.Next(contextValue) {
		var jobFunction model.JobFunction
		if decodeError := cursor.Decode(&jobFunction); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &jobFunction)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *JobFunctionRepository) UpdateByID(contextValue context.Context, jobFunctionIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": jobFunctionIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *JobFunctionRepository) DeleteByID(contextValue context.Context, jobFunctionIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": jobFunctionIdentifier})
	return returnedError
}
