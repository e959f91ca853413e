package academic

// GradeSet is the fixed set of allowed grade values on the Philippine
// 1.0 - 5.0 scale. Lower is better; membership checks are exact.
var GradeSet = []float64{1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00, 4.00, 5.00}

var gradeDescriptions = map[float64]string{
	1.00: "Outstanding",
	1.25: "Excellent",
	1.50: "Very Good",
	1.75: "Good",
	2.00: "Satisfactory",
	2.25: "Fair",
	2.50: "Pass",
	2.75: "Pass",
	3.00: "Pass",
	4.00: "Conditional",
	5.00: "Failed",
}

// GradeDescription returns the qualitative description for a grade value.
// Out-of-set values (eg. from legacy persisted data) map to "Unknown".
func GradeDescription(g float64) string {
	if desc, ok := gradeDescriptions[g]; ok {
		return desc
	}
	return "Unknown"
}

// PerformanceTier is a qualitative classification of a computed CGPA.
type PerformanceTier struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Ordered ascending thresholds; first match wins.
var performanceTiers = []struct {
	max  float64
	tier PerformanceTier
}{
	{1.50, PerformanceTier{"Excellent Performance", "Dean's List - Outstanding academic achievement (93-100%)"}},
	{2.00, PerformanceTier{"Very Good Performance", "Strong academic performance (84-92%)"}},
	{2.50, PerformanceTier{"Good Performance", "Solid academic standing (78-83%)"}},
	{3.00, PerformanceTier{"Satisfactory Performance", "Meeting graduation requirements (75-77%)"}},
	{4.00, PerformanceTier{"Needs Improvement", "Conditional standing - improvement required (65-74%)"}},
}

var criticalTier = PerformanceTier{"Critical Status", "Academic probation - immediate action needed (Below 65%)"}

// Classify maps a CGPA to its PerformanceTier.
func Classify(cgpa float64) PerformanceTier {
	for _, pt := range performanceTiers {
		if cgpa <= pt.max {
			return pt.tier
		}
	}
	return criticalTier
}

// ComputeCGPA returns the units-weighted mean grade over `courses`, at full
// precision; rounding for display is a presentation concern.
func ComputeCGPA(courses []Course) (float64, error) {
	if len(courses) == 0 {
		return 0, ErrNoCourses
	}
	var totalUnits int
	var totalGradePoints float64
	for _, c := range courses {
		totalUnits += c.Units
		totalGradePoints += c.GradePoints
	}
	return totalGradePoints / float64(totalUnits), nil
}
