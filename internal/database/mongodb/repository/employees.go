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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBSimpleEval)).Collection(string(core.MongoCollectionEmployees)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return nil
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

func (repository *EmployeeRepository) ListByOrganization(contextValue context.Context, organizationIdentifier primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(
		contextValue,
		bson.M{"organizationId": organizationIdentifier},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// FindByEmails 以 email 清單查詢同組織既有員工，供匯入去重預查使用
func (repository *EmployeeRepository) FindByEmails(contextValue context.Context, organizationIdentifier primitive.ObjectID, emails []string) (_ []*model.Employee, returnedError error) {
	if len(emails) == 0 {
		return nil, nil
	}
	cursor, findError := repository.collection.Find(contextValue, bson.M{
		"organizationId": organizationIdentifier,
		"email":          bson.M{"$in": emails},
	})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EmployeeRepository) CountByOrganization(contextValue context.Context, organizationIdentifier primitive.ObjectID) (returnedCount int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"organizationId": organizationIdentifier})
}

// ListRecent 取最近建立的員工，活動牆 fallback 來源之一
func (repository *EmployeeRepository) ListRecent(contextValue context.Context, organizationIdentifier primitive.ObjectID, limit int64) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(
		contextValue,
		bson.M{"organizationId": organizationIdentifier},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EmployeeRepository) UpdateByID(contextValue context.Context, employeeIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": employeeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	return returnedError
}
