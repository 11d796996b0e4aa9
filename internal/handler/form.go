package handler

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-admin-panel/internal/view"
)

// ShowCreate renders the empty student form.
func (h *StudentHandler) ShowCreate(c *gin.Context) {
	fv := view.NewStudentFormView(h.api, h.sessions.Token(c), "", h.validate, h.logger)
	h.renderForm(c, fv, 0)
}

// SubmitCreate handles a create submission. Success re-renders an empty
// form with an acknowledgment for rapid re-entry; failure preserves the
// entered values.
func (h *StudentHandler) SubmitCreate(c *gin.Context) {
	fv := view.NewStudentFormView(h.api, h.sessions.Token(c), "", h.validate, h.logger)
	_ = fv.Submit(c.Request.Context(), formValues(c))
	h.renderForm(c, fv, 0)
}

// ShowEdit renders the form prefilled from the record being edited.
func (h *StudentHandler) ShowEdit(c *gin.Context) {
	fv := view.NewStudentFormView(h.api, h.sessions.Token(c), c.Param("id"), h.validate, h.logger)
	fv.Prefill(c.Request.Context())
	h.renderForm(c, fv, 0)
}

// SubmitEdit handles an edit submission. Success shows the acknowledgment
// and navigates back to the list after a short delay.
func (h *StudentHandler) SubmitEdit(c *gin.Context) {
	fv := view.NewStudentFormView(h.api, h.sessions.Token(c), c.Param("id"), h.validate, h.logger)
	if err := fv.Submit(c.Request.Context(), formValues(c)); err != nil {
		h.renderForm(c, fv, 0)
		return
	}

	delay := int(math.Ceil(h.cfg.UI.EditRedirectDelay.Seconds()))
	if delay < 1 {
		delay = 1
	}
	h.renderForm(c, fv, delay)
}

func (h *StudentHandler) renderForm(c *gin.Context, fv *view.StudentFormView, redirectAfter int) {
	title := "Add New Student"
	if fv.EditMode() {
		title = "Edit Student"
	}
	c.HTML(http.StatusOK, "student_form.html", gin.H{
		"Title":         title,
		"Active":        "students",
		"View":          fv,
		"RedirectAfter": redirectAfter,
		"Teacher":       sidebarTeacher(c, h.api, h.sessions.Token(c)),
	})
}

func formValues(c *gin.Context) view.FormValues {
	return view.FormValues{
		FirstName:      c.PostForm("firstName"),
		LastName:       c.PostForm("lastName"),
		Email:          c.PostForm("email"),
		Age:            c.PostForm("age"),
		EnrollmentDate: c.PostForm("enrollmentDate"),
		Image:          c.PostForm("image"),
		Courses:        c.PostForm("courses"),
	}
}
