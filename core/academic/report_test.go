package academic

import (
	"testing"
	"time"
)

func TestBuildReport(t *testing.T) {
	svc, _ := setup(t)
	saveStudent(t, svc)
	addCourse(t, svc, "Math", 3, 1.5)
	addCourse(t, svc, "PE", 2, 1.0)

	now := time.Date(2021, 3, 14, 15, 9, 0, 0, time.UTC)
	rep, err := svc.Report(now)
	if err != nil {
		t.Fatalf("Report() failed: %v", err)
	}

	if want := "CGPA_Report_Juan_Dela_Cruz_2021-03-14"; rep.Basename != want {
		t.Errorf("Basename = %q, want %q", rep.Basename, want)
	}
	if want := "CGPA_Report_Juan_Dela_Cruz_2021-03-14.pdf"; rep.File("pdf") != want {
		t.Errorf("File(pdf) = %q, want %q", rep.File("pdf"), want)
	}

	wantLines := map[string]bool{
		"CGPA Calculation Report":                              false,
		"Name: Juan Dela Cruz":                                 false,
		"Grade Level: 3rd Year":                                false,
		"Section: BSCS-A":                                      false,
		"1. Math | Units: 3 | Grade: 1.5 | Grade Points: 4.50": false,
		"2. PE | Units: 2 | Grade: 1 | Grade Points: 2.00":     false,
		"Total Courses: 2":                                     false,
		"Total Units: 5":                                       false,
		"Total Grade Points: 6.50":                             false,
		"CGPA: 1.30":                                           false,
		"Performance: Excellent Performance":                   false,
	}
	for _, line := range rep.Lines {
		if _, ok := wantLines[line]; ok {
			wantLines[line] = true
		}
	}
	for line, seen := range wantLines {
		if !seen {
			t.Errorf("report is missing line %q", line)
		}
	}
}

func TestReportPreconditions(t *testing.T) {
	now := time.Now()

	t.Run("no profile", func(t *testing.T) {
		svc, _ := setup(t)
		if _, err := svc.Report(now); err == nil {
			t.Error("Report() on empty session should fail")
		}
	})

	t.Run("no courses", func(t *testing.T) {
		svc, _ := setup(t)
		saveStudent(t, svc)
		if _, err := svc.Report(now); err == nil {
			t.Error("Report() without courses should fail")
		}
	})
}
