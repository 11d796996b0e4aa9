package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/noah-isme/student-admin-panel/internal/models"
)

var rosterHeaders = []string{"First Name", "Last Name", "Email", "Age", "Enrollment Date", "Courses"}

func rosterRow(s models.Student) []string {
	return []string{
		s.FirstName,
		s.LastName,
		s.Email,
		strconv.Itoa(s.Age),
		models.NormalizeDate(s.EnrollmentDate),
		models.JoinCourses(s.Courses),
	}
}

// RosterCSV renders the student roster as CSV bytes.
func RosterCSV(students []models.Student) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(rosterHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, s := range students {
		if err := writer.Write(rosterRow(s)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
