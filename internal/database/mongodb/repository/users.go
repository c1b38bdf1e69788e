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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	repository := &UserRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionUsers)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *UserRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.UserIndexes)
	return nil
}

func (repository *UserRepository) Create(contextValue context.Context, user *model.User) (_ *model.User, returnedError error) {
	nowUTC := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, user)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	user.ID = objectID
	return user, nil
}

func (repository *UserRepository) GetByID(contextValue context.Context, userIdentifier primitive.ObjectID) (_ *model.User, returnedError error) {
	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": userIdentifier}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

func (repository *UserRepository) GetByEmail(contextValue context.Context, email string) (_ *model.User, returnedError error) {
	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"email": email}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

func (repository *UserRepository) UpdateByID(contextValue context.Context, userIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": userIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *UserRepository) UpdateLastLogin(contextValue context.Context, userIdentifier primitive.ObjectID, lastLoginAt time.Time) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(
		contextValue,
		bson.M{"_id": userIdentifier},
		withUpdatedAt(bson.M{"$set": bson.M{"lastLoginAt": lastLoginAt}}),
	)
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}
