package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/models"
)

// sidebarTeacher resolves the probed identity shown in the layout sidebar.
// The probe is best effort: every authenticated page renders with or
// without it.
func sidebarTeacher(c *gin.Context, client *api.Client, token string) *models.Teacher {
	teacher, err := client.CurrentTeacher(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	return teacher
}
