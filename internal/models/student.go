package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Student mirrors the upstream student record. The id is server-assigned and
// immutable; everything past age is optional.
type Student struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Age            int      `json:"age"`
	EnrollmentDate string   `json:"enrollmentDate,omitempty"`
	Image          string   `json:"image,omitempty"`
	Courses        []string `json:"courses"`
	Country        string   `json:"country,omitempty"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	About          string   `json:"about,omitempty"`
}

// FullName joins first and last name for display.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Initials returns the two-letter badge shown when no image is available.
// Names are sliced by rune, not byte, so accented names stay valid UTF-8.
func (s Student) Initials() string {
	var b strings.Builder
	for _, name := range []string{s.FirstName, s.LastName} {
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// Pagination carries the upstream paging metadata.
type Pagination struct {
	TotalPages    int `json:"totalPages"`
	TotalStudents int `json:"totalStudents"`
}

// StudentPage is one page of the student collection, scoped to a single
// (page, limit, search) query.
type StudentPage struct {
	Students   []Student  `json:"students"`
	Pagination Pagination `json:"pagination"`
}

// DashboardStats is the read-only aggregate served by GET /stats.
type DashboardStats struct {
	TotalStudents       int     `json:"totalStudents"`
	TotalUniqueCourses  int     `json:"totalUniqueCourses"`
	AverageAge          float64 `json:"averageAge"`
	EnrollmentsThisYear int     `json:"enrollmentsThisYear"`
}

// Teacher is the logged-in user's profile, probed from several candidate
// endpoints; field presence varies per backend.
type Teacher struct {
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Image     string `json:"image,omitempty"`
	Photo     string `json:"photo,omitempty"`
}

// DisplayName resolves the sidebar name: explicit name, then the first/last
// pair, then the email local-part, then a generic "Teacher".
func (t Teacher) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	if full := strings.TrimSpace(t.FirstName + " " + t.LastName); full != "" {
		return full
	}
	if t.Email != "" {
		if at := strings.Index(t.Email, "@"); at > 0 {
			return t.Email[:at]
		}
		return t.Email
	}
	return "Teacher"
}

// Avatar returns whichever image field the backend populated.
func (t Teacher) Avatar() string {
	if t.Image != "" {
		return t.Image
	}
	return t.Photo
}

// SplitCourses turns the comma-separated free-text input into a trimmed list
// with empty entries discarded.
func SplitCourses(raw string) []string {
	parts := strings.Split(raw, ",")
	courses := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			courses = append(courses, trimmed)
		}
	}
	return courses
}

// JoinCourses renders a course list back into its canonical display string.
func JoinCourses(courses []string) string {
	return strings.Join(courses, ", ")
}

// NormalizeDate reduces any upstream date representation to the plain
// calendar-date string a date input expects. Unparseable values pass through
// truncated to the date part when possible.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if len(raw) >= 10 {
		return raw[:10]
	}
	return raw
}

// FormatEnrollment renders the enrollment date for display, or "N/A" when the
// record has none.
func FormatEnrollment(raw string) string {
	normalized := NormalizeDate(raw)
	if normalized == "" {
		return "N/A"
	}
	if t, err := time.Parse("2006-01-02", normalized); err == nil {
		return t.Format("Jan 2, 2006")
	}
	return normalized
}

// OrNA substitutes "N/A" for absent optional fields.
func OrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}
