package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/models"
	"github.com/noah-isme/student-admin-panel/internal/session"
	"github.com/noah-isme/student-admin-panel/internal/view"
	"github.com/noah-isme/student-admin-panel/pkg/config"
	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
	"github.com/noah-isme/student-admin-panel/pkg/export"
)

// exportPageSize is the chunk size used when walking the full collection.
const exportPageSize = 100

// StudentHandler serves every student-centric page: the list, the forms,
// the profile, deletion and exports.
type StudentHandler struct {
	api      *api.Client
	sessions session.Store
	validate *validator.Validate
	logger   *zap.Logger
	cfg      *config.Config
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(deps Deps) *StudentHandler {
	return &StudentHandler{
		api:      deps.API,
		sessions: deps.Sessions,
		validate: deps.Validate,
		logger:   deps.Logger,
		cfg:      deps.Config,
	}
}

// List renders one page of the searchable student table. A search form
// submission carries no page parameter, so a new term always lands on page 1.
func (h *StudentHandler) List(c *gin.Context) {
	token := h.sessions.Token(c)

	page := 1
	if parsed, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = parsed
	}
	search := c.Query("search")

	lv := view.NewStudentListView(h.api, token, h.cfg.UI.PageSize, h.logger)
	lv.Mount(c.Request.Context(), page, search)

	h.renderList(c, lv, popFlash(c))
}

func (h *StudentHandler) renderList(c *gin.Context, lv *view.StudentListView, flash *Flash) {
	c.HTML(http.StatusOK, "students.html", gin.H{
		"Title":   "Students List",
		"Active":  "students",
		"Flash":   flash,
		"View":    lv,
		"Query":   listQuery(lv.Page, lv.Search),
		"Teacher": sidebarTeacher(c, h.api, h.sessions.Token(c)),
	})
}

// listQuery rebuilds the canonical query string for links back to the list.
func listQuery(page int, search string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if search != "" {
		q.Set("search", search)
	}
	return q.Encode()
}

// ConfirmDelete renders the interactive confirmation naming the student.
// Cancelling navigates back to the untouched list; no DELETE is issued.
func (h *StudentHandler) ConfirmDelete(c *gin.Context) {
	token := h.sessions.Token(c)
	id := c.Param("id")

	pv := view.NewStudentProfileView(h.api, token, id, h.logger)
	pv.Mount(c.Request.Context())

	name := id
	if pv.Student != nil {
		name = pv.Student.FullName()
	}

	c.HTML(http.StatusOK, "confirm_delete.html", gin.H{
		"Title":   "Delete Student",
		"Active":  "students",
		"ID":      id,
		"Name":    name,
		"Query":   listQuery(queryPage(c), c.Query("search")),
		"Page":    queryPage(c),
		"Search":  c.Query("search"),
		"Teacher": sidebarTeacher(c, h.api, token),
	})
}

// Delete performs the confirmed deletion. The list page is fetched once,
// the DELETE is issued, and on success the already-held list renders minus
// the removed row, without a refetch. On failure the list renders unchanged
// with the server-provided error.
func (h *StudentHandler) Delete(c *gin.Context) {
	token := h.sessions.Token(c)
	id := c.Param("id")
	name := c.PostForm("name")
	if name == "" {
		name = id
	}

	page := 1
	if parsed, err := strconv.Atoi(c.DefaultPostForm("page", "1")); err == nil {
		page = parsed
	}
	search := c.PostForm("search")

	lv := view.NewStudentListView(h.api, token, h.cfg.UI.PageSize, h.logger)
	lv.Mount(c.Request.Context(), page, search)

	if err := lv.Delete(c.Request.Context(), id, true); err != nil {
		h.renderList(c, lv, &Flash{Kind: "error", Message: appErrors.FromError(err).Message})
		return
	}

	h.renderList(c, lv, &Flash{Kind: "success", Message: fmt.Sprintf("Deleted %s", name)})
}

// Export streams the full roster as CSV or PDF.
func (h *StudentHandler) Export(c *gin.Context) {
	token := h.sessions.Token(c)
	format := c.DefaultQuery("format", "csv")

	students, err := h.fetchAllStudents(c, token)
	if err != nil {
		setFlash(c, "error", appErrors.FromError(err).Message)
		c.Redirect(http.StatusFound, "/students")
		return
	}

	switch format {
	case "pdf":
		data, err := export.RosterPDF(students, "Student Roster")
		if err != nil {
			setFlash(c, "error", "Failed to render export")
			c.Redirect(http.StatusFound, "/students")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="students.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		data, err := export.RosterCSV(students)
		if err != nil {
			setFlash(c, "error", "Failed to render export")
			c.Redirect(http.StatusFound, "/students")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="students.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}

func (h *StudentHandler) fetchAllStudents(c *gin.Context, token string) ([]models.Student, error) {
	var all []models.Student
	for page := 1; ; page++ {
		result, err := h.api.ListStudents(c.Request.Context(), token, page, exportPageSize, "")
		if err != nil {
			return nil, err
		}
		all = append(all, result.Students...)
		if page >= result.Pagination.TotalPages || len(result.Students) == 0 {
			break
		}
	}
	return all, nil
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
