package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/student-admin-panel/internal/models"
)

// StudentPayload is the create/update body; the id is never sent.
type StudentPayload struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Age            int      `json:"age"`
	EnrollmentDate string   `json:"enrollmentDate,omitempty"`
	Image          string   `json:"image"`
	Courses        []string `json:"courses"`
}

// ListStudents fetches one page of the collection. The search parameter is
// included only when non-empty.
func (c *Client) ListStudents(ctx context.Context, token string, page, limit int, search string) (*models.StudentPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if search != "" {
		query.Set("search", search)
	}

	var result models.StudentPage
	err := c.do(ctx, "list_students", token, http.MethodGet, "/students", query, nil, &result, "Failed to fetch students")
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStudent fetches one student, tolerating both the {student:{...}}
// envelope and the bare record.
func (c *Client) GetStudent(ctx context.Context, token, id string) (*models.Student, error) {
	var raw json.RawMessage
	err := c.do(ctx, "get_student", token, http.MethodGet, "/students/"+id, nil, nil, &raw, "Failed to fetch student")
	if err != nil {
		return nil, err
	}
	return decodeStudent(raw), nil
}

// CreateStudent registers a new student record.
func (c *Client) CreateStudent(ctx context.Context, token string, payload StudentPayload) (*models.Student, error) {
	var raw json.RawMessage
	err := c.do(ctx, "create_student", token, http.MethodPost, "/students", nil, payload, &raw, "Failed to add student")
	if err != nil {
		return nil, err
	}
	return decodeStudent(raw), nil
}

// UpdateStudent replaces an existing student record.
func (c *Client) UpdateStudent(ctx context.Context, token, id string, payload StudentPayload) (*models.Student, error) {
	var raw json.RawMessage
	err := c.do(ctx, "update_student", token, http.MethodPut, "/students/"+id, nil, payload, &raw, "Failed to update student")
	if err != nil {
		return nil, err
	}
	return decodeStudent(raw), nil
}

// DeleteStudent removes a student record.
func (c *Client) DeleteStudent(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete_student", token, http.MethodDelete, "/students/"+id, nil, nil, nil, "Failed to delete student")
}

// Stats fetches the dashboard aggregates; fields absent from the response
// stay at their zero values.
func (c *Client) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.do(ctx, "stats", token, http.MethodGet, "/stats", nil, nil, &stats, "Failed to fetch stats")
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func decodeStudent(raw json.RawMessage) *models.Student {
	if len(raw) == 0 {
		return nil
	}
	var wrapped struct {
		Student *models.Student `json:"student"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Student != nil {
		return wrapped.Student
	}
	var bare models.Student
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil
	}
	return &bare
}
