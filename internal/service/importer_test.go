package service

import (
	"strings"
	"testing"
)

func TestParseEmployeeCSV(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		input := strings.Join([]string{
			"fullName,email,phone,role,supervisorEmail",
			"王小明,ming@example.com,0912345678,engineer,boss@example.com",
			"李小華,HUA@Example.com,,designer,",
		}, "\n")

		rows, rowErrors, err := ParseEmployeeCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rowErrors) != 0 {
			t.Fatalf("expected no row errors, got %v", rowErrors)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[1].Email != "hua@example.com" {
			t.Errorf("email should be lowercased, got %q", rows[1].Email)
		}
		if rows[0].SupervisorEmail != "boss@example.com" {
			t.Errorf("supervisorEmail = %q, want boss@example.com", rows[0].SupervisorEmail)
		}
	})

	t.Run("only required columns", func(t *testing.T) {
		input := strings.Join([]string{
			"fullName,email,role",
			"Bob,bob@example.com,engineer",
		}, "\n")

		rows, rowErrors, err := ParseEmployeeCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rowErrors) != 0 {
			t.Fatalf("expected no row errors, got %v", rowErrors)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Phone != "" || rows[0].SupervisorEmail != "" {
			t.Errorf("optional fields should be empty, got %+v", rows[0])
		}
	})

	t.Run("columns mapped by header name", func(t *testing.T) {
		input := strings.Join([]string{
			"role,email,fullName,department",
			"engineer,bob@example.com,Bob,platform",
		}, "\n")

		rows, rowErrors, err := ParseEmployeeCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rowErrors) != 0 {
			t.Fatalf("expected no row errors, got %v", rowErrors)
		}
		if rows[0].FullName != "Bob" || rows[0].Email != "bob@example.com" || rows[0].Role != "engineer" {
			t.Errorf("fields not mapped by header name: %+v", rows[0])
		}
	})

	t.Run("missing required column", func(t *testing.T) {
		input := "fullName,email,phone\nfoo,foo@example.com,"
		_, _, err := ParseEmployeeCSV(strings.NewReader(input))
		if err == nil {
			t.Fatal("expected error when role column is absent")
		}
	})

	t.Run("invalid rows rejected together", func(t *testing.T) {
		input := strings.Join([]string{
			"fullName,email,phone,role,supervisorEmail",
			"王小明,ming@example.com,,engineer,",
			",not-an-email,,engineer,",
			"李小華,ming@example.com,,designer,",
		}, "\n")

		rows, rowErrors, err := ParseEmployeeCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows != nil {
			t.Fatalf("no rows should be returned when any row is invalid, got %d", len(rows))
		}
		if len(rowErrors) != 3 {
			t.Fatalf("expected 3 row errors, got %d: %v", len(rowErrors), rowErrors)
		}

		// 列號含標題列，第一筆資料列是 2
		if rowErrors[0].Row != 3 || rowErrors[0].Field != "fullName" {
			t.Errorf("first error = %+v, want row 3 fullName", rowErrors[0])
		}
		if rowErrors[1].Row != 3 || rowErrors[1].Field != "email" {
			t.Errorf("second error = %+v, want row 3 email", rowErrors[1])
		}
		if rowErrors[2].Row != 4 || rowErrors[2].Message != "duplicate of row 2" {
			t.Errorf("third error = %+v, want duplicate of row 2", rowErrors[2])
		}
	})

	t.Run("empty file", func(t *testing.T) {
		_, _, err := ParseEmployeeCSV(strings.NewReader(""))
		if err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}

func TestFilterExisting(t *testing.T) {
	rows := []EmployeeRow{
		{FullName: "王小明", Email: "ming@example.com", Role: "engineer"},
		{FullName: "李小華", Email: "hua@example.com", Role: "designer"},
		{FullName: "張大同", Email: "tong@example.com", Role: "manager"},
	}

	t.Run("skips rows already present", func(t *testing.T) {
		existing := map[string]bool{"hua@example.com": true}
		toInsert, skipped := FilterExisting(rows, existing)
		if skipped != 1 {
			t.Errorf("skipped = %d, want 1", skipped)
		}
		if len(toInsert) != 2 {
			t.Fatalf("toInsert length = %d, want 2", len(toInsert))
		}
		if toInsert[0].Email != "ming@example.com" || toInsert[1].Email != "tong@example.com" {
			t.Errorf("unexpected remaining rows: %+v", toInsert)
		}
	})

	t.Run("second import of same file inserts nothing", func(t *testing.T) {
		existing := map[string]bool{}
		for _, row := range rows {
			existing[row.Email] = true
		}
		toInsert, skipped := FilterExisting(rows, existing)
		if len(toInsert) != 0 {
			t.Errorf("toInsert length = %d, want 0", len(toInsert))
		}
		if skipped != len(rows) {
			t.Errorf("skipped = %d, want %d", skipped, len(rows))
		}
	})

	t.Run("no existing emails keeps everything", func(t *testing.T) {
		toInsert, skipped := FilterExisting(rows, map[string]bool{})
		if len(toInsert) != len(rows) || skipped != 0 {
			t.Errorf("toInsert/skipped = %d/%d, want %d/0", len(toInsert), skipped, len(rows))
		}
	})
}

func TestChunkEmails(t *testing.T) {
	emails := make([]string, 25)
	for i := range emails {
		emails[i] = "user@example.com"
	}

	t.Run("splits into fixed batches", func(t *testing.T) {
		chunks := ChunkEmails(emails, 10)
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d", len(chunks))
		}
		if len(chunks[0]) != 10 || len(chunks[1]) != 10 || len(chunks[2]) != 5 {
			t.Errorf("chunk sizes = %d/%d/%d, want 10/10/5", len(chunks[0]), len(chunks[1]), len(chunks[2]))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if chunks := ChunkEmails(nil, 10); chunks != nil {
			t.Errorf("expected nil chunks, got %v", chunks)
		}
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		chunks := ChunkEmails(emails, 0)
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks with default size, got %d", len(chunks))
		}
		if len(chunks[0]) != emailChunkSize {
			t.Errorf("first chunk size = %d, want %d", len(chunks[0]), emailChunkSize)
		}
	})
}
