package academic

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/trezcool/isko/core"
)

var (
	// errors
	ErrNoProfile        = errors.New("please save student information first")
	ErrNoCourses        = errors.New("please add at least one course")
	ErrCourseNotFound   = errors.New("course not found")
	ErrNothingToClear   = errors.New("nothing to clear")
	ErrNoExportData     = errors.New("no data to export")
	ErrNoRemainingUnits = errors.New("remaining units must be at least 1")
)

type (
	// Gateway is the persistence collaborator: a durable key-value store
	// holding the session Snapshot under a fixed key. A nil Snapshot from
	// Load means no prior state; malformed stored data is treated the same.
	Gateway interface {
		Load(ctx context.Context) (*Snapshot, error)
		Save(ctx context.Context, snap Snapshot) error
		Clear(ctx context.Context) error
	}

	// Service owns the session state: at most one Student and the ordered
	// course list. The modeled session is single-user; the mutex only guards
	// against concurrent transport requests.
	Service struct {
		mu      sync.RWMutex
		student *Student
		courses []Course

		gateway Gateway
		log     core.Logger
	}
)

func NewService(gateway Gateway, logger core.Logger) *Service {
	return &Service{gateway: gateway, log: logger}
}

// Restore loads the persisted session, if any. Absent or corrupt data is
// treated as a fresh session, never an error.
func (svc *Service) Restore(ctx context.Context) {
	snap, err := svc.gateway.Load(ctx)
	if err != nil {
		svc.log.Warn("loading saved session; starting fresh", err)
		return
	}
	if snap == nil {
		return
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.student = snap.StudentInfo
	svc.courses = append([]Course(nil), snap.Courses...)
}

// SaveStudent creates or replaces the Student profile; existing courses are kept.
func (svc *Service) SaveStudent(ctx context.Context, si StudentInfo) (Student, error) {
	if err := si.Validate(); err != nil {
		return Student{}, err
	}
	svc.mu.Lock()
	svc.student = &Student{Name: si.Name, GradeLevel: si.GradeLevel, Section: si.Section}
	st := *svc.student
	svc.mu.Unlock()

	svc.persist(ctx)
	return st, nil
}

// Student returns the current profile, if any.
func (svc *Service) Student() (Student, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.student == nil {
		return Student{}, false
	}
	return *svc.student, true
}

// AddCourse appends a course to the roster. A Student profile must exist.
func (svc *Service) AddCourse(ctx context.Context, nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	svc.mu.Lock()
	if svc.student == nil {
		svc.mu.Unlock()
		return Course{}, core.NewPreconditionError(ErrNoProfile)
	}
	course := Course{
		ID:          uuid.New().String(),
		Name:        nc.Name,
		Units:       nc.Units,
		Grade:       nc.Grade,
		GradePoints: nc.Grade * float64(nc.Units),
	}
	svc.courses = append(svc.courses, course)
	svc.mu.Unlock()

	svc.persist(ctx)
	return course, nil
}

// Courses returns the roster in insertion order.
func (svc *Service) Courses() []Course {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]Course(nil), svc.courses...)
}

// RemoveCourse deletes the course with the given id, preserving the order of the rest.
func (svc *Service) RemoveCourse(ctx context.Context, id string) error {
	svc.mu.Lock()
	idx := -1
	for i, c := range svc.courses {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		svc.mu.Unlock()
		return ErrCourseNotFound
	}
	svc.courses = append(svc.courses[:idx], svc.courses[idx+1:]...)
	svc.mu.Unlock()

	svc.persist(ctx)
	return nil
}

// ClearCourses empties the roster, keeping the Student profile.
func (svc *Service) ClearCourses(ctx context.Context) error {
	svc.mu.Lock()
	if len(svc.courses) == 0 {
		svc.mu.Unlock()
		return core.NewPreconditionError(ErrNothingToClear)
	}
	svc.courses = nil
	svc.mu.Unlock()

	svc.persist(ctx)
	return nil
}

// ClearProfile drops the Student and all courses atomically: there is no
// intermediate state where one is cleared and the other remains.
func (svc *Service) ClearProfile(ctx context.Context) error {
	svc.mu.Lock()
	if svc.student == nil && len(svc.courses) == 0 {
		svc.mu.Unlock()
		return core.NewPreconditionError(ErrNothingToClear)
	}
	svc.student = nil
	svc.courses = nil
	svc.mu.Unlock()

	if err := svc.gateway.Clear(ctx); err != nil {
		svc.log.Warn("clearing saved session", err)
	}
	return nil
}

// Summary computes the CGPA totals and tier for the current roster.
func (svc *Service) Summary() (Summary, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.summaryLocked()
}

func (svc *Service) summaryLocked() (Summary, error) {
	cgpa, err := ComputeCGPA(svc.courses)
	if err != nil {
		return Summary{}, core.NewPreconditionError(err)
	}
	sum := Summary{
		TotalCourses: len(svc.courses),
		CGPA:         cgpa,
		Tier:         Classify(cgpa),
	}
	for _, c := range svc.courses {
		sum.TotalUnits += c.Units
		sum.TotalGradePoints += c.GradePoints
	}
	return sum, nil
}

// Snapshot returns the current session state as one persistable value.
func (svc *Service) Snapshot() Snapshot {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.snapshotLocked()
}

func (svc *Service) snapshotLocked() Snapshot {
	var st *Student
	if svc.student != nil {
		cp := *svc.student
		st = &cp
	}
	return Snapshot{
		StudentInfo: st,
		Courses:     append([]Course(nil), svc.courses...),
	}
}

// persist saves the session best-effort: a storage failure is logged and
// swallowed so the in-memory operation that triggered it still succeeds.
func (svc *Service) persist(ctx context.Context) {
	snap := svc.Snapshot()
	if err := svc.gateway.Save(ctx, snap); err != nil {
		svc.log.Warn("saving session; changes are kept in memory", err)
	}
}
