package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

const (
	MongoDBSimpleEval MongoDatabaseName = "simpleeval"
)

// MongoDB collections
const (
	MongoCollectionUsers         MongoCollection = "users"
	MongoCollectionOrganizations MongoCollection = "organizations"
	MongoCollectionEmployees     MongoCollection = "employees"
	MongoCollectionJobFunctions  MongoCollection = "job_functions"
	MongoCollectionQuestions     MongoCollection = "questions"
	MongoCollectionSchedules     MongoCollection = "evaluation_schedules"
	MongoCollectionEvaluations   MongoCollection = "evaluations"
	MongoCollectionActivities    MongoCollection = "activities"
	MongoCollectionImportJobs    MongoCollection = "import_jobs"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyRefreshToken RedisKey = "refresh_token"   // refresh token
	RedisKeyBlacklist    RedisKey = "blacklist_token" // 已登出 token
	RedisKeyLoginLimit   RedisKey = "login_limit"     // 登入限流
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Sort   bson.D `json:"sort,omitempty" bson:"sort,omitempty"`
	Limit  int64  `json:"limit,omitempty" bson:"limit,omitempty"`
}
