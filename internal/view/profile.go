package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/models"
	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

// fallbackScanLimit bounds the collection fetch used when the
// single-resource endpoint is unavailable.
const fallbackScanLimit = 1000

type studentProfileAPI interface {
	GetStudent(ctx context.Context, token, id string) (*models.Student, error)
	ListStudents(ctx context.Context, token string, page, limit int, search string) (*models.StudentPage, error)
}

// StudentProfileView drives the single-student detail page.
type StudentProfileView struct {
	api    studentProfileAPI
	logger *zap.Logger
	token  string

	StudentID string
	Student   *models.Student
	NotFound  bool
	Error     string
}

// NewStudentProfileView constructs the profile controller.
func NewStudentProfileView(api studentProfileAPI, token, id string, logger *zap.Logger) *StudentProfileView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentProfileView{api: api, logger: logger, token: token, StudentID: id}
}

// Mount fetches the student. If the single-resource endpoint fails, the full
// collection is scanned for a matching id before giving up.
func (v *StudentProfileView) Mount(ctx context.Context) {
	v.Student = nil
	v.NotFound = false
	v.Error = ""

	student, err := v.api.GetStudent(ctx, v.token, v.StudentID)
	if err == nil && student != nil {
		v.Student = student
		return
	}

	if err != nil && appErrors.IsNetwork(err) {
		v.Error = appErrors.FromError(err).Message
		return
	}

	page, listErr := v.api.ListStudents(ctx, v.token, 1, fallbackScanLimit, "")
	if listErr != nil {
		v.Error = appErrors.FromError(listErr).Message
		return
	}
	for i := range page.Students {
		if page.Students[i].ID == v.StudentID {
			v.Student = &page.Students[i]
			return
		}
	}
	v.NotFound = true
}
