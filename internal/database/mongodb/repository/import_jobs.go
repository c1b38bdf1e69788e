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
)

type ImportJobRepository struct {
	collection *mongo.Collection
}

func NewImportJobRepository(mongoClient *client.MongoClient) *ImportJobRepository {
	repository := &ImportJobRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionImportJobs)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ImportJobRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ImportJobIndexes)
	return nil
}

func (repository *ImportJobRepository) Create(contextValue context.Context, importJob *model.ImportJob) (_ *model.ImportJob, returnedError error) {
	nowUTC := time.Now().UTC()
	if importJob.ID.IsZero() {
		importJob.ID = primitive.NewObjectID()
	}
	importJob.CreatedAt = nowUTC
	importJob.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, importJob)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	importJob.ID = objectID
	return importJob, nil
}

func (repository *ImportJobRepository) GetByID(contextValue context.Context, importJobIdentifier primitive.ObjectID) (_ *model.ImportJob, returnedError error) {
	var importJob model.ImportJob
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": importJobIdentifier}).Decode(&importJob); returnedError != nil {
		return nil, returnedError
	}
	return &importJob, nil
}

func (repository *ImportJobRepository) UpdateByID(contextValue context.Context, importJobIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": importJobIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}
