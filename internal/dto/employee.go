package dto

import "time"

// 建立員工
type CreateEmployeeDto struct {
	FullName        string   `json:"fullName" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone,omitempty"`
	Role            string   `json:"role" binding:"required"` // 職稱，非登入角色
	SupervisorEmail string   `json:"supervisorEmail,omitempty" binding:"omitempty,email"`
	JobFunctionIDs  []string `json:"jobFunctionIds,omitempty"`
}

// 更新員工
type UpdateEmployeeDto struct {
	FullName        *string   `json:"fullName,omitempty"`
	Email           *string   `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string   `json:"phone,omitempty"`
	Role            *string   `json:"role,omitempty"`
	SupervisorEmail *string   `json:"supervisorEmail,omitempty" binding:"omitempty,email"`
	JobFunctionIDs  *[]string `json:"jobFunctionIds,omitempty"`
}

type EmployeeResponseDto struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organizationId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Role            string    `json:"role"`
	SupervisorEmail string    `json:"supervisorEmail,omitempty"`
	JobFunctionIDs  []string  `json:"jobFunctionIds"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
