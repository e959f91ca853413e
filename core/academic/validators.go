package academic

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/isko/core"
)

var (
	gradeValueTag  = "gradevalue"
	gradeValueText = "must be a valid grade on the 1.0 - 5.0 scale"

	courseUnitsTag  = "courseunits"
	courseUnitsText = "units must be a whole number between 1 and 10"

	studentNameTag   = "studentname"
	studentNameText  = "only letters, spaces, periods, commas and hyphens are allowed"
	studentNameRegex = regexp.MustCompile(`^[a-zA-Z\s.,-]+$`)
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(gradeValueTag, gradeValueValidation)
	core.RegisterCustomTranslation(gradeValueTag, gradeValueText)

	_ = core.Validate.RegisterValidation(courseUnitsTag, courseUnitsValidation)
	core.RegisterCustomTranslation(courseUnitsTag, courseUnitsText)

	_ = core.Validate.RegisterValidation(studentNameTag, studentNameValidation)
	core.RegisterCustomTranslation(studentNameTag, studentNameText)
}

// ValidGrade reports whether `g` is exactly one of the allowed grade values.
// No tolerance: values between listed grades are invalid.
func ValidGrade(g float64) bool {
	for _, allowed := range GradeSet {
		if g == allowed {
			return true
		}
	}
	return false
}

// ValidUnits reports whether `u` is within the allowed unit load, 1 to 10 inclusive.
func ValidUnits(u int) bool {
	return 1 <= u && u <= 10
}

// ValidStudentName reports whether `s`, once trimmed, is at least 2 characters
// long and contains only letters, whitespace, periods, commas and hyphens.
func ValidStudentName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && studentNameRegex.MatchString(s)
}

// Custom Validators

func gradeValueValidation(fl validator.FieldLevel) bool {
	return ValidGrade(fl.Field().Float())
}

func courseUnitsValidation(fl validator.FieldLevel) bool {
	return ValidUnits(int(fl.Field().Int()))
}

func studentNameValidation(fl validator.FieldLevel) bool {
	return ValidStudentName(fl.Field().String())
}
