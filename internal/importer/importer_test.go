package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"category-service/internal/domain"
	categorysvc "category-service/internal/service/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	items     []domain.CategoryInput
	seen      map[string]bool
	createErr error
}

func (s *stubWriter) Validate(payload any) (domain.CategoryInput, *categorysvc.Violations) {
	return categorysvc.Validate(payload)
}

func (s *stubWriter) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	slug := categorysvc.Slugify(in.Title)
	if s.seen[slug] {
		return nil, domain.ErrAlreadyExists
	}
	s.seen[slug] = true
	s.items = append(s.items, in)
	return &domain.Category{ID: int64(len(s.items)), Slug: slug, Title: in.Title}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `slug,title
html,HTML
,JavaScript
x,ab
,Svelte Kit
dup,html
`
	w := &stubWriter{}
	report, err := NewCSVImporter(strings.NewReader(csvData), w).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Created)
	require.Len(t, w.items, 3)
	assert.Equal(t, "Svelte Kit", w.items[2].Title)

	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 4, report.Skipped[0].Line)
	assert.Equal(t, "title: title must be at least 3 characters long", report.Skipped[0].Reason)
	assert.Equal(t, 6, report.Skipped[1].Line)
	assert.Equal(t, "duplicate slug", report.Skipped[1].Reason)
}

func TestCSVImporter_MissingTitleColumn(t *testing.T) {
	_, err := NewCSVImporter(strings.NewReader("name\nGo\n"), &stubWriter{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestCSVImporter_StopsOnStoreFailure(t *testing.T) {
	w := &stubWriter{createErr: errors.New("connection refused")}
	report, err := NewCSVImporter(strings.NewReader("title\nReact\nVue3\n"), w).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Zero(t, report.Created)
}
