package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-admin-panel/internal/view"
)

// Profile renders one student's full record, with the probed teacher
// identity in the sidebar.
func (h *StudentHandler) Profile(c *gin.Context) {
	token := h.sessions.Token(c)
	id := c.Param("id")

	pv := view.NewStudentProfileView(h.api, token, id, h.logger)
	pv.Mount(c.Request.Context())

	status := http.StatusOK
	if pv.NotFound {
		status = http.StatusNotFound
	}

	c.HTML(status, "student_profile.html", gin.H{
		"Title":   "Student Profile",
		"Active":  "students",
		"View":    pv,
		"Teacher": sidebarTeacher(c, h.api, token),
	})
}
