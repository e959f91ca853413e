package academic

import (
	"github.com/trezcool/isko/core"
)

// Student is the active profile. There is at most one per session; it is
// created or replaced wholesale from a validated StudentInfo.
type Student struct {
	Name       string `json:"name"`
	GradeLevel string `json:"grade_level"`
	Section    string `json:"section"`
}

// Course is one academic entry. GradePoints is fixed at creation; correcting
// a course is remove-then-re-add, never an in-place edit.
type Course struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Units       int     `json:"units"`
	Grade       float64 `json:"grade"`
	GradePoints float64 `json:"grade_points"`
}

// Description returns the qualitative description of the course grade.
func (c Course) Description() string {
	return GradeDescription(c.Grade)
}

// StudentInfo contains information needed to create or replace the Student profile.
type StudentInfo struct {
	Name       string `json:"name" validate:"required,studentname"`
	GradeLevel string `json:"grade_level" validate:"required"`
	Section    string `json:"section" validate:"required"`
}

func (si *StudentInfo) Validate() error {
	si.Name = core.CleanString(si.Name)
	si.GradeLevel = core.CleanString(si.GradeLevel)
	si.Section = core.CleanString(si.Section)
	return core.Validate.Struct(si)
}

// NewCourse contains information needed to add a Course to the roster.
type NewCourse struct {
	Name  string  `json:"name" validate:"required"`
	Units int     `json:"units" validate:"required,courseunits"`
	Grade float64 `json:"grade" validate:"required,gradevalue"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

// Summary is the computed CGPA result for the current roster.
type Summary struct {
	TotalCourses     int             `json:"total_courses"`
	TotalUnits       int             `json:"total_units"`
	TotalGradePoints float64         `json:"total_grade_points"`
	CGPA             float64         `json:"cgpa"`
	Tier             PerformanceTier `json:"tier"`
}

// Snapshot is the atomic unit of persistence: the whole session state,
// serialized as one value. The JSON keys match the historical storage payload
// so previously saved sessions keep loading.
type Snapshot struct {
	StudentInfo *Student `json:"studentInfo"`
	Courses     []Course `json:"courses"`
}
