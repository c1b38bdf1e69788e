package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee 受評員工（不可登入，僅為評核對象）
type Employee struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id"`
	OrganizationID  primitive.ObjectID   `json:"organizationId" bson:"organizationId"`
	FullName        string               `json:"fullName" bson:"fullName"`
	Email           string               `json:"email" bson:"email"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Role            string               `json:"role" bson:"role"`
	SupervisorEmail string               `json:"supervisorEmail,omitempty" bson:"supervisorEmail,omitempty"`
	JobFunctionIDs  []primitive.ObjectID `json:"jobFunctionIds" bson:"jobFunctionIds"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// (organizationId, email) 唯一：除了寫入前的預查，資料庫層也以唯一索引擋下競態寫入
var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_organizationId_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_organizationId_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "jobFunctionIds", Value: 1}},
		Options: options.Index().SetName("idx_organizationId_jobFunctionIds"),
	},
}
