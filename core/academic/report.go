package academic

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/trezcool/isko/core"
)

// Report is a rendering-agnostic document: ordered printable lines plus a
// suggested file basename. Exporters pick the extension.
type Report struct {
	Basename string   `json:"basename"`
	Lines    []string `json:"lines"`
}

// File returns the suggested filename for the given extension.
func (r Report) File(ext string) string {
	return r.Basename + "." + ext
}

// Exporter renders a Report to a document and returns the written file path.
type Exporter interface {
	Export(ctx context.Context, rep Report) (string, error)
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// BuildReport lays out the printable report for the given session state.
func BuildReport(st Student, courses []Course, sum Summary, now time.Time) Report {
	lines := make([]string, 0, len(courses)+16)
	lines = append(lines,
		"CGPA Calculation Report",
		"Date: "+now.Format("2006-01-02 15:04"),
		"",
		"Student Information",
		"Name: "+st.Name,
		"Grade Level: "+st.GradeLevel,
		"Section: "+st.Section,
		"",
		"Courses",
	)
	for i, c := range courses {
		lines = append(lines, fmt.Sprintf(
			"%d. %s | Units: %d | Grade: %g | Grade Points: %.2f",
			i+1, c.Name, c.Units, c.Grade, c.GradePoints))
	}
	lines = append(lines,
		strings.Repeat("-", 72),
		"Summary",
		fmt.Sprintf("Total Courses: %d", sum.TotalCourses),
		fmt.Sprintf("Total Units: %d", sum.TotalUnits),
		fmt.Sprintf("Total Grade Points: %.2f", sum.TotalGradePoints),
		fmt.Sprintf("CGPA: %.2f", sum.CGPA),
		"Performance: "+sum.Tier.Title,
		"Description: "+sum.Tier.Description,
	)
	return Report{
		Basename: fmt.Sprintf("CGPA_Report_%s_%s",
			whitespaceRegex.ReplaceAllString(st.Name, "_"), now.Format("2006-01-02")),
		Lines: lines,
	}
}

// Report builds the printable report for the current session. Both a Student
// profile and at least one course are required.
func (svc *Service) Report(now time.Time) (Report, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.student == nil || len(svc.courses) == 0 {
		return Report{}, core.NewPreconditionError(ErrNoExportData)
	}
	sum, err := svc.summaryLocked()
	if err != nil {
		return Report{}, err
	}
	return BuildReport(*svc.student, svc.courses, sum, now), nil
}
