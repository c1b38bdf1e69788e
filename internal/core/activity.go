package core

// ActivityType 活動事件類型（append-only 活動牆）
type ActivityType string

const (
	ActivityEvaluationCreated   ActivityType = "evaluation_created"
	ActivityEvaluationSubmitted ActivityType = "evaluation_submitted"
	ActivityEvaluationApproved  ActivityType = "evaluation_approved"
	ActivityEvaluationRejected  ActivityType = "evaluation_rejected"
	ActivityEmployeeAdded       ActivityType = "employee_added"
	ActivityEmployeesImported   ActivityType = "employees_imported"
	ActivityJobFunctionAdded    ActivityType = "job_function_added"
	ActivityQuestionAdded       ActivityType = "question_added"
)

// EvaluationStatus 評核單狀態
type EvaluationStatus string

const (
	EvaluationStatusDraft     EvaluationStatus = "draft"
	EvaluationStatusPending   EvaluationStatus = "pending"
	EvaluationStatusSubmitted EvaluationStatus = "submitted"
	EvaluationStatusCompleted EvaluationStatus = "completed"
)

// ImportJobStatus 批次匯入工作狀態
type ImportJobStatus string

const (
	ImportJobRunning   ImportJobStatus = "running"
	ImportJobCompleted ImportJobStatus = "completed"
	ImportJobFailed    ImportJobStatus = "failed"
)
