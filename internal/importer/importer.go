package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"category-service/internal/domain"
	categorysvc "category-service/internal/service/category"
)

// CategoryWriter is the part of the category service the importer needs.
type CategoryWriter interface {
	Validate(payload any) (domain.CategoryInput, *categorysvc.Violations)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

// RowError describes a skipped CSV row. Line is 1-based and counts the header.
type RowError struct {
	Line   int
	Title  string
	Reason string
}

// Report summarizes an import run.
type Report struct {
	Created int
	Skipped []RowError
}

// CSVImporter reads a CSV file with a "title" column and creates one category
// per row through the regular validation and sanitization path.
type CSVImporter struct {
	reader *csv.Reader
	svc    CategoryWriter
}

func NewCSVImporter(r io.Reader, svc CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, svc: svc}
}

// Run creates categories row by row. Invalid and duplicate rows are skipped
// and reported; any other store failure stops the run.
func (i *CSVImporter) Run(ctx context.Context) (Report, error) {
	var report Report

	headers, err := i.reader.Read()
	if err != nil {
		return report, fmt.Errorf("read headers: %w", err)
	}
	col := -1
	for idx, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), "title") {
			col = idx
			break
		}
	}
	if col < 0 {
		return report, errors.New(`missing "title" column`)
	}

	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return report, fmt.Errorf("read row %d: %w", line, err)
		}
		if col >= len(record) {
			report.Skipped = append(report.Skipped, RowError{Line: line, Reason: "missing title"})
			continue
		}

		title := record[col]
		in, violations := i.svc.Validate(map[string]any{"title": title})
		if violations != nil {
			report.Skipped = append(report.Skipped, RowError{Line: line, Title: title, Reason: violations.Error()})
			continue
		}

		if _, err := i.svc.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				report.Skipped = append(report.Skipped, RowError{Line: line, Title: title, Reason: "duplicate slug"})
				continue
			}
			return report, fmt.Errorf("create row %d: %w", line, err)
		}
		report.Created++
	}

	return report, nil
}
