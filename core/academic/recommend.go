package academic

import (
	"fmt"

	"github.com/trezcool/isko/core"
)

// RecommendationRequest asks what average grade is needed over the remaining
// units to reach the target CGPA.
type RecommendationRequest struct {
	TargetCGPA     float64 `json:"target_cgpa" validate:"required,min=1,max=5"`
	RemainingUnits int     `json:"remaining_units"`
}

func (rr RecommendationRequest) Validate() error { return core.Validate.Struct(rr) }

type Recommendation struct {
	Message       string   `json:"message"`
	RequiredGrade *float64 `json:"required_grade,omitempty"`
	Achievable    bool     `json:"achievable"`
}

// Recommend solves for the average grade required over the remaining units.
// The reported grade is clamped to 1.0 (the best possible) when the target is
// reachable even with perfect grades; above 5.0 the target is unreachable and
// no grade is returned. In between, the exact unrounded value is returned.
func Recommend(courses []Course, req RecommendationRequest) (Recommendation, error) {
	if err := req.Validate(); err != nil {
		return Recommendation{}, err
	}
	if req.RemainingUnits < 1 {
		return Recommendation{}, core.NewPreconditionError(ErrNoRemainingUnits)
	}
	if len(courses) == 0 {
		return Recommendation{Message: "Add some courses first to get recommendations"}, nil
	}

	var currentUnits int
	var currentGradePoints float64
	for _, c := range courses {
		currentUnits += c.Units
		currentGradePoints += c.GradePoints
	}

	totalUnits := currentUnits + req.RemainingUnits
	requiredTotalGradePoints := req.TargetCGPA * float64(totalUnits)
	requiredRemainingGradePoints := requiredTotalGradePoints - currentGradePoints
	requiredGrade := requiredRemainingGradePoints / float64(req.RemainingUnits)

	switch {
	case requiredGrade < 1.0:
		best := 1.0
		return Recommendation{
			Message: fmt.Sprintf(
				"Great! You can achieve your target CGPA of %g even with perfect grades (1.0) in remaining courses.",
				req.TargetCGPA),
			RequiredGrade: &best,
			Achievable:    true,
		}, nil
	case requiredGrade > 5.0:
		return Recommendation{
			Message: fmt.Sprintf(
				"Unfortunately, achieving a CGPA of %g is not possible with the remaining %d units.",
				req.TargetCGPA, req.RemainingUnits),
		}, nil
	default:
		return Recommendation{
			Message: fmt.Sprintf(
				"To achieve a CGPA of %g, you need an average grade of %.2f in your remaining %d units.",
				req.TargetCGPA, requiredGrade, req.RemainingUnits),
			RequiredGrade: &requiredGrade,
			Achievable:    true,
		}, nil
	}
}

// Recommend runs the recommendation engine against the current roster.
func (svc *Service) Recommend(req RecommendationRequest) (Recommendation, error) {
	return Recommend(svc.Courses(), req)
}
