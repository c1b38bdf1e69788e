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

// 活動事件為 append-only，不提供 Update 與 Delete
type ActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(mongoClient *client.MongoClient) *ActivityRepository {
	repository := &ActivityRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionActivities)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ActivityRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ActivityIndexes)
	return nil
}

func (repository *ActivityRepository) Create(contextValue context.Context, activity *model.Activity) (_ *model.Activity, returnedError error) {
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, activity)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	activity.ID = objectID
	return activity, nil
}

func (repository *ActivityRepository) ListRecent(contextValue context.Context, organizationIdentifier primitive.ObjectID, limit int64) (_ []*model.Activity, returnedError error) {
	cursor, findError := repository.collection.Find(
		contextValue,
		bson.M{"organizationId": organizationIdentifier},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Activity
	for cursor.Next(contextValue) {
		var activity model.Activity
		if decodeError := cursor.Decode(&activity); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &activity)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}
