package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/models"
	"github.com/noah-isme/student-admin-panel/pkg/config"
)

// memorySessions keeps the token in a field so tests can flip between the
// authenticated and anonymous macro-states without cookies.
type memorySessions struct {
	token string
}

func (m *memorySessions) Token(*gin.Context) string { return m.token }
func (m *memorySessions) Login(_ *gin.Context, token string) error {
	m.token = token
	return nil
}
func (m *memorySessions) Logout(*gin.Context) { m.token = "" }

// fakeUpstream is an in-memory rendition of the student API.
type fakeUpstream struct {
	students  []models.Student
	listCalls int
}

func (u *fakeUpstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			var req api.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})

		case r.Method == http.MethodGet && r.URL.Path == "/auth/me":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user": map[string]string{"name": "Ms. Reyes", "email": "reyes@school.edu"},
			})

		case r.Method == http.MethodGet && r.URL.Path == "/stats":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"totalStudents": len(u.students), "totalUniqueCourses": 3,
				"averageAge": 16.5, "enrollmentsThisYear": 2,
			})

		case r.Method == http.MethodGet && r.URL.Path == "/students":
			u.listCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"students": u.students,
				"pagination": map[string]int{
					"totalPages": 1, "totalStudents": len(u.students),
				},
			})

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/students/"):
			id := strings.TrimPrefix(r.URL.Path, "/students/")
			kept := u.students[:0]
			for _, s := range u.students {
				if s.ID != id {
					kept = append(kept, s)
				}
			}
			u.students = kept
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodPost && r.URL.Path == "/students":
			var payload api.StudentPayload
			_ = json.NewDecoder(r.Body).Decode(&payload)
			created := models.Student{
				ID: "s-new", FirstName: payload.FirstName, LastName: payload.LastName,
				Email: payload.Email, Age: payload.Age, Courses: payload.Courses,
			}
			u.students = append(u.students, created)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"student": created})

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/students/"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"student": map[string]string{"id": strings.TrimPrefix(r.URL.Path, "/students/")},
			})

		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/students/"):
			id := strings.TrimPrefix(r.URL.Path, "/students/")
			for _, s := range u.students {
				if s.ID == id {
					json.NewEncoder(w).Encode(map[string]interface{}{"student": s})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "student not found"})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func seededUpstream() *fakeUpstream {
	return &fakeUpstream{students: []models.Student{
		{ID: "s1", FirstName: "Ana", LastName: "Gomez", Email: "ana@school.edu", Age: 17, Courses: []string{"Math"}},
		{ID: "s2", FirstName: "Ben", LastName: "Ruiz", Email: "ben@school.edu", Age: 16, Courses: []string{"Art"}},
	}}
}

func newApp(t *testing.T, upstream *fakeUpstream, sessions *memorySessions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream.handler())
	t.Cleanup(server.Close)

	client := api.New(api.Config{BaseURL: server.URL}, server.Client(), nil, nil)

	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"orNA":             models.OrNA,
		"joinCourses":      models.JoinCourses,
		"formatEnrollment": models.FormatEnrollment,
		"add":              func(a, b int) int { return a + b },
	})
	r.LoadHTMLGlob("../../web/templates/*.html")

	Register(r, Deps{
		API:      client,
		Sessions: sessions,
		Config: &config.Config{UI: config.UIConfig{
			PageSize:          10,
			EditRedirectDelay: 1500 * time.Millisecond,
		}},
	})
	return r
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginFlowOpensSessionAndRedirects(t *testing.T) {
	sessions := &memorySessions{}
	router := newApp(t, seededUpstream(), sessions)

	recorder := postForm(router, "/login", url.Values{
		"email": {"t@x.com"}, "password": {"secret"},
	})

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
	assert.Equal(t, "tok-1", sessions.token)
}

func TestLoginFailureStaysOnFormWithMessage(t *testing.T) {
	sessions := &memorySessions{}
	router := newApp(t, seededUpstream(), sessions)

	recorder := postForm(router, "/login", url.Values{
		"email": {"t@x.com"}, "password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	assert.Contains(t, recorder.Body.String(), "t@x.com")
	assert.Empty(t, sessions.token)
}

func TestUnknownPathFallsBackByAuthState(t *testing.T) {
	sessions := &memorySessions{}
	router := newApp(t, seededUpstream(), sessions)

	recorder := get(router, "/nowhere")
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	sessions.token = "tok-1"
	recorder = get(router, "/nowhere")
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
}

func TestListRendersStudentsTable(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/students")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Ana Gomez")
	assert.Contains(t, body, "Ben Ruiz")
	assert.Contains(t, body, "Page 1 of 1")
	assert.Contains(t, body, "2 students")
	// Imageless rows fall back to the initials badge.
	assert.Contains(t, body, `<span class="avatar-badge">AG</span>`)
}

func TestSidebarShowsTeacherOnEveryAuthenticatedPage(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	for _, path := range []string{
		"/dashboard",
		"/students",
		"/students/new",
		"/students/s1",
		"/students/s1/edit",
		"/students/s1/delete",
	} {
		recorder := get(router, path)
		require.Equal(t, http.StatusOK, recorder.Code, path)
		assert.Contains(t, recorder.Body.String(), "Ms. Reyes", path)
		assert.Contains(t, recorder.Body.String(), "reyes@school.edu", path)
	}
}

func TestDashboardRendersTiles(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/dashboard")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Total Students")
	assert.Contains(t, body, "16.5")
}

func TestConfirmDeleteNamesTheStudent(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/students/s1/delete?page=1")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Ana Gomez")
}

func TestDeleteRendersListWithoutRemovedRowAndWithoutRefetch(t *testing.T) {
	upstream := seededUpstream()
	router := newApp(t, upstream, &memorySessions{token: "tok-1"})

	recorder := postForm(router, "/students/s1/delete", url.Values{
		"name": {"Ana Gomez"}, "page": {"1"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Deleted Ana Gomez")
	assert.NotContains(t, body, `href="/students/s1"`)
	assert.Contains(t, body, "Ben Ruiz")
	assert.Equal(t, 1, upstream.listCalls, "the mutated list renders from memory")
}

func TestProfileUnknownStudentRendersNotFound(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/students/ghost")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Student not found")
}

func TestProfileRendersRecordAndTeacherSidebar(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/students/s1")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Ana Gomez")
	assert.Contains(t, body, "Ms. Reyes")
}

func TestEditSuccessSchedulesReturnToList(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := postForm(router, "/students/s1/edit", url.Values{
		"firstName": {"Ana"}, "lastName": {"Gomez"},
		"email": {"ana@school.edu"}, "age": {"18"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Student updated successfully!")
	assert.Contains(t, body, `http-equiv="refresh"`)
}

func TestCreateSuccessClearsTheForm(t *testing.T) {
	upstream := seededUpstream()
	router := newApp(t, upstream, &memorySessions{token: "tok-1"})

	recorder := postForm(router, "/students/new", url.Values{
		"firstName": {"Cara"}, "lastName": {"Diaz"},
		"email": {"cara@school.edu"}, "age": {"15"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Student added successfully!")
	assert.NotContains(t, body, `value="Cara"`)
}

func TestExportStreamsCSVAttachment(t *testing.T) {
	router := newApp(t, seededUpstream(), &memorySessions{token: "tok-1"})

	recorder := get(router, "/students/export?format=csv")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "students.csv")
	body := recorder.Body.String()
	assert.Contains(t, body, "First Name")
	assert.Contains(t, body, "ana@school.edu")
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &memorySessions{token: "tok-1"}
	router := newApp(t, seededUpstream(), sessions)

	recorder := postForm(router, "/logout", nil)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))
	assert.Empty(t, sessions.token)
}
