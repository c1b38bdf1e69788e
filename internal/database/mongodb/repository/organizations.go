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

type OrganizationRepository struct {
	collection *mongo.Collection
}

func NewOrganizationRepository(mongoClient *client.MongoClient) *OrganizationRepository {
	repository := &OrganizationRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionOrganizations)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *OrganizationRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.OrganizationIndexes)
	return nil
}

func (repository *OrganizationRepository) Create(contextValue context.Context, organization *model.Organization) (_ *model.Organization, returnedError error) {
	nowUTC := time.Now().UTC()
	if organization.ID.IsZero() {
		organization.ID = primitive.NewObjectID()
	}
	organization.CreatedAt = nowUTC
	organization.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, organization)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	organization.ID = objectID
	return organization, nil
}

func (repository *OrganizationRepository) GetByID(contextValue context.Context, organizationIdentifier primitive.ObjectID) (_ *model.Organization, returnedError error) {
	var organization model.Organization
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": organizationIdentifier}).Decode(&organization); returnedError != nil {
		return nil, returnedError
	}
	return &organization, nil
}

func (repository *OrganizationRepository) UpdateByID(contextValue context.Context, organizationIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": organizationIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

// IncrementUsedSeats 席次使用數累加（可為負，最小值由呼叫端把關）
func (repository *OrganizationRepository) IncrementUsedSeats(contextValue context.Context, organizationIdentifier primitive.ObjectID, delta int) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(
		contextValue,
		bson.M{"_id": organizationIdentifier},
		withUpdatedAt(bson.M{"$inc": bson.M{"usedSeats": delta}}),
	)
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}
