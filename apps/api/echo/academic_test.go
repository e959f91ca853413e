package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
	exportsvc "github.com/trezcool/isko/services/export"
	memstore "github.com/trezcool/isko/storage/kv/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(t *testing.T) (Server, *academic.Service) {
	t.Helper()
	conf := &core.Config{
		TestMode: true,
		Export:   core.ExportConfig{Dir: t.TempDir()},
	}
	svc := academic.NewService(memstore.Open(), nopLogger{})
	srv := NewServer(&Options{
		Conf:           conf,
		Logger:         nopLogger{},
		AcademicSvc:    svc,
		Exporter:       exportsvc.NewTextService(conf),
		DisableReqLogs: true,
	})
	return srv, svc
}

func request(t *testing.T, srv Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

func saveTestStudent(t *testing.T, srv Server) {
	t.Helper()
	rec := request(t, srv, http.MethodPut, "/v1/student", academic.StudentInfo{
		Name:       "Juan Dela Cruz",
		GradeLevel: "3rd Year",
		Section:    "BSCS-A",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func addTestCourse(t *testing.T, srv Server, name string, units int, grade float64) CourseResponse {
	t.Helper()
	rec := request(t, srv, http.MethodPost, "/v1/courses", academic.NewCourse{Name: name, Units: units, Grade: grade})
	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp CourseResponse
	decode(t, rec, &resp)
	return resp
}

func TestAcademicApi_student(t *testing.T) {
	srv, _ := setup(t)

	rec := request(t, srv, http.MethodGet, "/v1/student", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, srv, http.MethodPut, "/v1/student", academic.StudentInfo{
		Name:       "Juan123",
		GradeLevel: "3rd Year",
		Section:    "A",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")

	saveTestStudent(t, srv)

	rec = request(t, srv, http.MethodGet, "/v1/student", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var st academic.Student
	decode(t, rec, &st)
	assert.Equal(t, "Juan Dela Cruz", st.Name)
	assert.Equal(t, "BSCS-A", st.Section)
}

func TestAcademicApi_courses(t *testing.T) {
	srv, _ := setup(t)

	// no profile yet
	rec := request(t, srv, http.MethodPost, "/v1/courses", academic.NewCourse{Name: "Math", Units: 3, Grade: 1.5})
	assert.Equal(t, http.StatusConflict, rec.Code)

	saveTestStudent(t, srv)

	course := addTestCourse(t, srv, "Math", 3, 1.5)
	assert.Equal(t, 4.5, course.GradePoints)
	assert.Equal(t, "Very Good", course.Description)
	addTestCourse(t, srv, "PE", 2, 1.0)

	rec = request(t, srv, http.MethodPost, "/v1/courses", academic.NewCourse{Name: "Chem", Units: 3, Grade: 1.1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "grade")

	rec = request(t, srv, http.MethodGet, "/v1/courses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var courses []CourseResponse
	decode(t, rec, &courses)
	if assert.Len(t, courses, 2) {
		assert.Equal(t, "Math", courses[0].Name)
		assert.Equal(t, "PE", courses[1].Name)
	}

	rec = request(t, srv, http.MethodDelete, "/v1/courses/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, srv, http.MethodDelete, "/v1/courses/"+course.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, srv, http.MethodDelete, "/v1/courses", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// nothing left to clear
	rec = request(t, srv, http.MethodDelete, "/v1/courses", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcademicApi_summary(t *testing.T) {
	srv, _ := setup(t)

	rec := request(t, srv, http.MethodGet, "/v1/summary", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	saveTestStudent(t, srv)
	addTestCourse(t, srv, "Math", 3, 1.5)
	addTestCourse(t, srv, "PE", 2, 1.0)

	rec = request(t, srv, http.MethodGet, "/v1/summary", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var sum academic.Summary
	decode(t, rec, &sum)
	assert.Equal(t, 2, sum.TotalCourses)
	assert.Equal(t, 5, sum.TotalUnits)
	assert.Equal(t, 6.5, sum.TotalGradePoints)
	assert.Equal(t, 1.3, sum.CGPA)
	assert.Equal(t, "Excellent Performance", sum.Tier.Title)
}

func TestAcademicApi_recommend(t *testing.T) {
	srv, _ := setup(t)
	saveTestStudent(t, srv)
	addTestCourse(t, srv, "Math", 3, 1.5)

	rec := request(t, srv, http.MethodPost, "/v1/recommendation", academic.RecommendationRequest{
		TargetCGPA:     2.0,
		RemainingUnits: 3,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp academic.Recommendation
	decode(t, rec, &resp)
	assert.True(t, resp.Achievable)
	if assert.NotNil(t, resp.RequiredGrade) {
		assert.Equal(t, 2.5, *resp.RequiredGrade)
	}

	// zero remaining units is rejected, not a division by zero
	rec = request(t, srv, http.MethodPost, "/v1/recommendation", academic.RecommendationRequest{
		TargetCGPA:     2.0,
		RemainingUnits: 0,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcademicApi_export(t *testing.T) {
	srv, _ := setup(t)

	rec := request(t, srv, http.MethodPost, "/v1/export", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	saveTestStudent(t, srv)
	addTestCourse(t, srv, "Math", 3, 1.5)

	rec = request(t, srv, http.MethodPost, "/v1/export", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ExportResponse
	decode(t, rec, &resp)
	if assert.NotEmpty(t, resp.File) {
		_, err := os.Stat(resp.File)
		assert.NoError(t, err)
	}
}

func TestAcademicApi_clearProfile(t *testing.T) {
	srv, svc := setup(t)

	rec := request(t, srv, http.MethodDelete, "/v1/profile", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	saveTestStudent(t, srv)
	addTestCourse(t, srv, "Math", 3, 1.5)

	rec = request(t, srv, http.MethodDelete, "/v1/profile", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, srv, http.MethodGet, "/v1/student", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, svc.Courses())
}
