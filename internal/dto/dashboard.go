package dto

// 儀表板統計
type DashboardStatsDto struct {
	EmployeeCount      int64 `json:"employeeCount"`
	ActiveSchedules    int64 `json:"activeSchedules"`
	PendingEvaluations int64 `json:"pendingEvaluations"`
}
