package dto

import (
	"time"

	"simpleeval/internal/core"
)

// CSV 單列驗證失敗明細
type ImportRowErrorDto struct {
	Row     int    `json:"row"` // 1-based，含標題列
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ImportResultDto struct {
	JobID     string              `json:"jobId"`
	TotalRows int                 `json:"totalRows"`
	Imported  int                 `json:"imported"`
	Skipped   int                 `json:"skipped"` // 同組織 email 已存在而略過
	Failed    int                 `json:"failed"`
	Errors    []ImportRowErrorDto `json:"errors,omitempty"`
}

// ImportPreviewRowDto 預覽單列（僅展示，不落庫）
type ImportPreviewRowDto struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role"`
	SupervisorEmail string `json:"supervisorEmail,omitempty"`
}

type ImportPreviewDto struct {
	Rows      []ImportPreviewRowDto `json:"rows"` // 最多前 10 列
	TotalRows int                   `json:"totalRows"`
	Remaining int                   `json:"remaining"`
}

type ImportJobResponseDto struct {
	ID        string               `json:"id"`
	FileName  string               `json:"fileName"`
	TotalRows int                  `json:"totalRows"`
	Imported  int                  `json:"imported"`
	Skipped   int                  `json:"skipped"`
	Failed    int                  `json:"failed"`
	Status    core.ImportJobStatus `json:"status"`
	Error     string               `json:"error,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
