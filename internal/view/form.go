package view

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/models"
	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

type studentFormAPI interface {
	GetStudent(ctx context.Context, token, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, token string, payload api.StudentPayload) (*models.Student, error)
	UpdateStudent(ctx context.Context, token, id string, payload api.StudentPayload) (*models.Student, error)
}

// FormValues holds the raw form inputs; everything is a string until
// submission builds the typed payload.
type FormValues struct {
	FirstName      string
	LastName       string
	Email          string
	Age            string
	EnrollmentDate string
	Image          string
	Courses        string
}

type formPayload struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Age       int    `validate:"required,gt=0"`
}

// StudentFormView drives both the create and edit forms. Edit mode is
// identified by a non-empty StudentID.
type StudentFormView struct {
	api       studentFormAPI
	validator *validator.Validate
	logger    *zap.Logger
	token     string

	StudentID string
	Values    FormValues
	Error     string
	Success   string
}

// NewStudentFormView constructs the form controller; id is empty for create.
func NewStudentFormView(api studentFormAPI, token, id string, validate *validator.Validate, logger *zap.Logger) *StudentFormView {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentFormView{
		api:       api,
		validator: validate,
		logger:    logger,
		token:     token,
		StudentID: id,
	}
}

// EditMode reports whether the view edits an existing record.
func (v *StudentFormView) EditMode() bool {
	return v.StudentID != ""
}

// Prefill loads the record being edited into the form fields. On failure the
// form stays in create-like emptiness with an inline error.
func (v *StudentFormView) Prefill(ctx context.Context) {
	if !v.EditMode() {
		return
	}

	student, err := v.api.GetStudent(ctx, v.token, v.StudentID)
	if err != nil || student == nil {
		v.Error = "Failed to load student"
		if err != nil {
			v.Error = appErrors.FromError(err).Message
		}
		return
	}

	v.Values = FormValues{
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Email:          student.Email,
		Age:            strconv.Itoa(student.Age),
		EnrollmentDate: models.NormalizeDate(student.EnrollmentDate),
		Image:          student.Image,
		Courses:        models.JoinCourses(student.Courses),
	}
}

// Submit validates the form and issues the create or update call. On a
// failed submission the entered values are preserved for correction; a
// successful create clears them for rapid re-entry.
func (v *StudentFormView) Submit(ctx context.Context, values FormValues) error {
	v.Values = values
	v.Error = ""
	v.Success = ""

	age, err := strconv.Atoi(strings.TrimSpace(values.Age))
	if err != nil {
		v.Error = "Age must be a number"
		return appErrors.Clone(appErrors.ErrValidation, v.Error)
	}

	if err := v.validator.Struct(formPayload{
		FirstName: strings.TrimSpace(values.FirstName),
		LastName:  strings.TrimSpace(values.LastName),
		Email:     strings.TrimSpace(values.Email),
		Age:       age,
	}); err != nil {
		v.Error = "First name, last name, email and age are required"
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, v.Error)
	}

	payload := api.StudentPayload{
		FirstName:      strings.TrimSpace(values.FirstName),
		LastName:       strings.TrimSpace(values.LastName),
		Email:          strings.TrimSpace(values.Email),
		Age:            age,
		EnrollmentDate: strings.TrimSpace(values.EnrollmentDate),
		Image:          strings.TrimSpace(values.Image),
		Courses:        models.SplitCourses(values.Courses),
	}

	if v.EditMode() {
		if _, err := v.api.UpdateStudent(ctx, v.token, v.StudentID, payload); err != nil {
			v.Error = appErrors.FromError(err).Message
			if v.Error == "" {
				v.Error = "Failed to update student"
			}
			return err
		}
		v.Success = "Student updated successfully!"
		return nil
	}

	if _, err := v.api.CreateStudent(ctx, v.token, payload); err != nil {
		v.Error = appErrors.FromError(err).Message
		if v.Error == "" {
			v.Error = "Failed to add student"
		}
		return err
	}
	v.Success = "Student added successfully!"
	v.Values = FormValues{}
	return nil
}
