package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// email 預查每批 $in 的上限
	emailChunkSize = 10
	// 併發寫入上限
	importConcurrency = 4
	// 預覽最多展示的列數
	previewRowLimit = 10
)

// csvRequiredColumns 必要欄位，欄位以標題名稱對應、順序不拘；phone 與 supervisorEmail 可省略
var csvRequiredColumns = []string{"fullName", "email", "role"}

// EmployeeRow CSV 單列解析結果
type EmployeeRow struct {
	FullName        string
	Email           string
	Phone           string
	Role            string
	SupervisorEmail string
}

type ImporterService struct {
	trace           *telemetry.Trace
	logger          *zap.Logger
	metric          *telemetry.Metric
	employeeRepo    *repository.EmployeeRepository
	importJobRepo   *repository.ImportJobRepository
	orgRepo         *repository.OrganizationRepository
	activityService *ActivityService
}

func NewImporterService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	metric *telemetry.Metric,
	employeeRepo *repository.EmployeeRepository,
	importJobRepo *repository.ImportJobRepository,
	orgRepo *repository.OrganizationRepository,
	activityService *ActivityService,
) *ImporterService {
	return &ImporterService{
		trace:           trace,
		logger:          logger,
		metric:          metric,
		employeeRepo:    employeeRepo,
		importJobRepo:   importJobRepo,
		orgRepo:         orgRepo,
		activityService: activityService,
	}
}

// ParseEmployeeCSV 解析並驗證整份 CSV。全有全無：任一列有錯即回傳全部錯誤明細，不產生任何列。
func ParseEmployeeCSV(reader io.Reader) ([]EmployeeRow, []dto.ImportRowErrorDto, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[strings.TrimSpace(name)] = i
	}
	for _, column := range csvRequiredColumns {
		if _, ok := columnIndex[column]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", column)
		}
	}
	field := func(record []string, name string) string {
		i, ok := columnIndex[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []EmployeeRow
	var rowErrors []dto.ImportRowErrorDto
	seen := map[string]int{}
	rowNumber := 1 // 含標題列

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		rowNumber++
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", rowNumber, err)
		}

		row := EmployeeRow{
			FullName:        field(record, "fullName"),
			Email:           normalizeEmail(field(record, "email")),
			Phone:           field(record, "phone"),
			Role:            field(record, "role"),
			SupervisorEmail: normalizeEmail(field(record, "supervisorEmail")),
		}

		if row.FullName == "" {
			rowErrors = append(rowErrors, dto.ImportRowErrorDto{Row: rowNumber, Field: "fullName", Message: "required"})
		}
		if row.Email == "" {
			rowErrors = append(rowErrors, dto.ImportRowErrorDto{Row: rowNumber, Field: "email", Message: "required"})
		} else if _, err := mail.ParseAddress(row.Email); err != nil {
			rowErrors = append(rowErrors, dto.ImportRowErrorDto{Row: rowNumber, Field: "email", Message: "invalid email"})
		} else if firstRow, dup := seen[row.Email]; dup {
			rowErrors = append(rowErrors, dto.ImportRowErrorDto{
				Row: rowNumber, Field: "email",
				Message: fmt.Sprintf("duplicate of row %d", firstRow),
			})
		} else {
			seen[row.Email] = rowNumber
		}
		if row.Role == "" {
			rowErrors = append(rowErrors, dto.ImportRowErrorDto{Row: rowNumber, Field: "role", Message: "required"})
		}
		if row.SupervisorEmail != "" {
			if _, err := mail.ParseAddress(row.SupervisorEmail); err != nil {
				rowErrors = append(rowErrors, dto.ImportRowErrorDto{Row: rowNumber, Field: "supervisorEmail", Message: "invalid email"})
			}
		}

		rows = append(rows, row)
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors, nil
	}
	return rows, nil, nil
}

// ChunkEmails 將 email 清單切成固定大小批次
func ChunkEmails(emails []string, chunkSize int) [][]string {
	if chunkSize <= 0 {
		chunkSize = emailChunkSize
	}
	var chunks [][]string
	for start := 0; start < len(emails); start += chunkSize {
		end := start + chunkSize
		if end > len(emails) {
			end = len(emails)
		}
		chunks = append(chunks, emails[start:end])
	}
	return chunks
}

// FilterExisting 依既有 email 過濾待新增列；重複匯入同一份檔案時第二次應為零新增
func FilterExisting(rows []EmployeeRow, existingEmails map[string]bool) (toInsert []EmployeeRow, skipped int) {
	toInsert = make([]EmployeeRow, 0, len(rows))
	for _, row := range rows {
		if existingEmails[row.Email] {
			skipped++
			continue
		}
		toInsert = append(toInsert, row)
	}
	return toInsert, skipped
}

// Preview 只解析驗證不落庫，回傳前 10 列與剩餘筆數
func (s *ImporterService) Preview(ctx context.Context, reader io.Reader) (*dto.ImportPreviewDto, error) {
	_, _, end := s.trace.WithSpan(ctx)
	var returnedError error
	defer func() { end(returnedError) }()

	rows, rowErrors, err := ParseEmployeeCSV(reader)
	if err != nil {
		returnedError = cErr.CSVParseError(err.Error())
		return nil, returnedError
	}
	if len(rowErrors) > 0 {
		detail, _ := json.Marshal(rowErrors)
		returnedError = cErr.CSVValidationError(string(detail))
		return nil, returnedError
	}

	limit := len(rows)
	if limit > previewRowLimit {
		limit = previewRowLimit
	}
	previewRows := make([]dto.ImportPreviewRowDto, limit)
	for i := 0; i < limit; i++ {
		previewRows[i] = dto.ImportPreviewRowDto{
			FullName:        rows[i].FullName,
			Email:           rows[i].Email,
			Phone:           rows[i].Phone,
			Role:            rows[i].Role,
			SupervisorEmail: rows[i].SupervisorEmail,
		}
	}
	return &dto.ImportPreviewDto{
		Rows:      previewRows,
		TotalRows: len(rows),
		Remaining: len(rows) - limit,
	}, nil
}

// Import 匯入員工：驗證整份 CSV、預查既有 email、併發寫入，全程掛在 ImportJob 紀錄上
func (s *ImporterService) Import(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, userName string, fileName string, reader io.Reader) (*dto.ImportResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	var returnedError error
	defer func() { end(returnedError) }()

	rows, rowErrors, err := ParseEmployeeCSV(reader)
	if err != nil {
		returnedError = cErr.CSVParseError(err.Error())
		return nil, returnedError
	}
	if len(rowErrors) > 0 {
		// 全有全無：回傳全部明細讓呼叫端一次修完
		detail, _ := json.Marshal(rowErrors)
		returnedError = cErr.CSVValidationError(string(detail))
		return nil, returnedError
	}
	if len(rows) == 0 {
		returnedError = cErr.CSVValidationError("no data rows in file")
		return nil, returnedError
	}

	job, err := s.importJobRepo.Create(ctx, &model.ImportJob{
		OrganizationID: orgID,
		CreatedBy:      userID,
		FileName:       fileName,
		TotalRows:      len(rows),
		Status:         core.ImportJobRunning,
	})
	if err != nil {
		returnedError = cErr.DatabaseError("database CreateImportJob error")
		return nil, returnedError
	}

	// 預查既有 email，分批 $in 查詢
	emails := make([]string, len(rows))
	for i, row := range rows {
		emails[i] = row.Email
	}
	existingEmails := map[string]bool{}
	for _, chunk := range ChunkEmails(emails, emailChunkSize) {
		found, err := s.employeeRepo.FindByEmails(ctx, orgID, chunk)
		if err != nil {
			s.failJob(ctx, job.ID, "existing email lookup failed")
			returnedError = cErr.DatabaseError("database FindByEmails error")
			return nil, returnedError
		}
		for _, employee := range found {
			existingEmails[strings.ToLower(employee.Email)] = true
		}
	}

	toInsert, skipped := FilterExisting(rows, existingEmails)

	// 併發寫入；單列失敗不中斷整批，逐列計數
	imported := 0
	failed := 0
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(importConcurrency)
	results := make([]error, len(toInsert))
	for i, row := range toInsert {
		i, row := i, row
		group.Go(func() error {
			_, insertErr := s.employeeRepo.Create(groupCtx, &model.Employee{
				OrganizationID:  orgID,
				FullName:        row.FullName,
				Email:           row.Email,
				Phone:           row.Phone,
				Role:            row.Role,
				SupervisorEmail: row.SupervisorEmail,
			})
			results[i] = insertErr
			return nil
		})
	}
	_ = group.Wait()
	for _, insertErr := range results {
		if insertErr != nil {
			failed++
			s.logger.Warn("failed to insert imported employee", zap.Error(insertErr))
			continue
		}
		imported++
	}

	if imported > 0 {
		if _, err := s.orgRepo.IncrementUsedSeats(ctx, orgID, imported); err != nil {
			s.logger.Warn("failed to increment used seats", zap.Error(err))
		}
	}
	if s.metric.ImportedRowsTotal != nil {
		s.metric.ImportedRowsTotal.WithLabelValues("ok").Add(float64(imported))
	}
	if s.metric.ImportSkippedTotal != nil {
		s.metric.ImportSkippedTotal.WithLabelValues("duplicate").Add(float64(skipped))
	}

	jobStatus := core.ImportJobCompleted
	if imported == 0 && failed > 0 {
		jobStatus = core.ImportJobFailed
	}
	if _, err := s.importJobRepo.UpdateByID(ctx, job.ID, bson.M{"$set": bson.M{
		"imported": imported,
		"skipped":  skipped,
		"failed":   failed,
		"status":   jobStatus,
	}}); err != nil {
		s.logger.Warn("failed to finalize import job", zap.Error(err))
	}

	s.activityService.TrackEmployeesImported(ctx, orgID, userID, userName, job.ID, imported, skipped)
	s.trace.ApplyTraceAttributes(span, core.TraceImportMeta{
		OrganizationID: orgID.Hex(),
		JobID:          job.ID.Hex(),
		TotalRows:      len(rows),
		Imported:       imported,
		Skipped:        skipped,
		Failed:         failed,
	})

	return &dto.ImportResultDto{
		JobID:     job.ID.Hex(),
		TotalRows: len(rows),
		Imported:  imported,
		Skipped:   skipped,
		Failed:    failed,
	}, nil
}

// GetImportJob 查詢匯入紀錄
func (s *ImporterService) GetImportJob(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*dto.ImportJobResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	job, err := s.importJobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, cErr.NotFound("import job not found")
	}
	if job.OrganizationID != orgID {
		return nil, cErr.NotFound("import job not found")
	}
	return &dto.ImportJobResponseDto{
		ID:        job.ID.Hex(),
		FileName:  job.FileName,
		TotalRows: job.TotalRows,
		Imported:  job.Imported,
		Skipped:   job.Skipped,
		Failed:    job.Failed,
		Status:    job.Status,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}, nil
}

func (s *ImporterService) failJob(ctx context.Context, jobID primitive.ObjectID, reason string) {
	if _, err := s.importJobRepo.UpdateByID(ctx, jobID, bson.M{"$set": bson.M{
		"status": core.ImportJobFailed,
		"error":  reason,
	}}); err != nil {
		s.logger.Warn("failed to mark import job failed", zap.Error(err))
	}
}
