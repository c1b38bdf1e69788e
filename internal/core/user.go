package core

type Role string

const (
	RoleAdmin     Role = "admin"     // 管理員：組織擁有者，可管理所有資料
	RoleEvaluator Role = "evaluator" // 評核者：可填寫評核
	RoleApprover  Role = "approver"  // 審核者：可覆核評核結果
)

var Roles = []Role{RoleAdmin, RoleEvaluator, RoleApprover}

func IsValidRole(role string) bool {
	for _, v := range Roles {
		if Role(role) == v {
			return true
		}
	}
	return false
}
