package view

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/models"
	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

// List view render states, in precedence order.
const (
	StateLoading = "loading"
	StateError   = "error"
	StateEmpty   = "empty"
	StateTable   = "table"
)

type studentListAPI interface {
	ListStudents(ctx context.Context, token string, page, limit int, search string) (*models.StudentPage, error)
	DeleteStudent(ctx context.Context, token, id string) error
}

// StudentListView drives the paginated, searchable student table.
type StudentListView struct {
	api      studentListAPI
	logger   *zap.Logger
	token    string
	pageSize int
	seq      fetchSequence

	Loading       bool
	Error         string
	Search        string
	Page          int
	TotalPages    int
	TotalStudents int
	Students      []models.Student
}

// NewStudentListView constructs the list controller.
func NewStudentListView(api studentListAPI, token string, pageSize int, logger *zap.Logger) *StudentListView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return &StudentListView{
		api:      api,
		logger:   logger,
		token:    token,
		pageSize: pageSize,
		Page:     1,
	}
}

// Mount loads one page of the collection. Pages below 1 clamp to 1; a page
// beyond the collection end is refetched at the last page.
func (v *StudentListView) Mount(ctx context.Context, page int, search string) {
	if page < 1 {
		page = 1
	}
	v.Page = page
	v.Search = strings.TrimSpace(search)
	v.fetch(ctx)

	if v.Error == "" && v.TotalPages >= 1 && v.Page > v.TotalPages {
		v.Page = v.TotalPages
		v.fetch(ctx)
	}
}

// SubmitSearch applies a new search term, always restarting at page 1.
func (v *StudentListView) SubmitSearch(ctx context.Context, term string) {
	v.Search = strings.TrimSpace(term)
	v.Page = 1
	v.fetch(ctx)
}

// NextPage advances one page; a no-op on the last page.
func (v *StudentListView) NextPage(ctx context.Context) {
	if !v.HasNext() {
		return
	}
	v.Page++
	v.fetch(ctx)
}

// PrevPage goes back one page; a no-op on the first page.
func (v *StudentListView) PrevPage(ctx context.Context) {
	if !v.HasPrev() {
		return
	}
	v.Page--
	v.fetch(ctx)
}

func (v *StudentListView) fetch(ctx context.Context) {
	v.Loading = true
	v.Error = ""

	seq := v.seq.next()
	page, err := v.api.ListStudents(ctx, v.token, v.Page, v.pageSize, v.Search)
	if !v.seq.latest(seq) {
		// A newer fetch was issued while this one was in flight.
		return
	}

	v.Loading = false
	if err != nil {
		v.Error = appErrors.FromError(err).Message
		return
	}

	v.Students = page.Students
	v.TotalPages = page.Pagination.TotalPages
	v.TotalStudents = page.Pagination.TotalStudents
}

// Delete removes one student. Declining confirmation leaves everything
// untouched; on a confirmed, successful DELETE the student is dropped from
// the in-memory list without a refetch.
func (v *StudentListView) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := v.api.DeleteStudent(ctx, v.token, id); err != nil {
		return err
	}

	kept := v.Students[:0]
	for _, s := range v.Students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	v.Students = kept
	if v.TotalStudents > 0 {
		v.TotalStudents--
	}
	return nil
}

// HasPrev reports whether a previous page exists.
func (v *StudentListView) HasPrev() bool {
	return v.Page > 1
}

// HasNext reports whether a next page exists.
func (v *StudentListView) HasNext() bool {
	return v.Page < v.TotalPages
}

// State resolves the mutually exclusive render states: loading wins over
// error, error over empty, empty over the table.
func (v *StudentListView) State() string {
	switch {
	case v.Loading:
		return StateLoading
	case v.Error != "":
		return StateError
	case len(v.Students) == 0:
		return StateEmpty
	default:
		return StateTable
	}
}

// EmptyMessage is the search-aware no-results text.
func (v *StudentListView) EmptyMessage() string {
	if v.Search != "" {
		return fmt.Sprintf("No students match %q.", v.Search)
	}
	return "No students found."
}
