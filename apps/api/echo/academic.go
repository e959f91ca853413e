package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/isko/core/academic"
)

type academicApi struct {
	svc      *academic.Service
	exporter academic.Exporter
}

func registerAcademicAPI(g *echo.Group, svc *academic.Service, exporter academic.Exporter) {
	api := academicApi{svc: svc, exporter: exporter}

	sg := g.Group("/student")
	sg.PUT("", api.saveStudent)
	sg.GET("", api.retrieveStudent)

	g.DELETE("/profile", api.clearProfile)

	cg := g.Group("/courses")
	cg.POST("", api.addCourse)
	cg.GET("", api.queryCourses)
	cg.DELETE("", api.clearCourses)
	cg.DELETE("/:id", api.removeCourse)

	g.GET("/summary", api.summary)
	g.POST("/recommendation", api.recommend)
	g.POST("/export", api.export)
}

// CourseResponse decorates a Course with its grade description for display.
type CourseResponse struct {
	academic.Course
	Description string `json:"description"`
}

func newCourseResponse(c academic.Course) CourseResponse {
	return CourseResponse{Course: c, Description: c.Description()}
}

type ExportResponse struct {
	File string `json:"file"`
}

// Handlers

func (api *academicApi) saveStudent(ctx echo.Context) error {
	var data academic.StudentInfo
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentInfo")
	}
	st, err := api.svc.SaveStudent(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *academicApi) retrieveStudent(ctx echo.Context) error {
	st, ok := api.svc.Student()
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *academicApi) clearProfile(ctx echo.Context) error {
	if err := api.svc.ClearProfile(ctx.Request().Context()); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) addCourse(ctx echo.Context) error {
	var data academic.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	course, err := api.svc.AddCourse(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newCourseResponse(course))
}

func (api *academicApi) queryCourses(ctx echo.Context) error {
	courses := api.svc.Courses()
	resp := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, newCourseResponse(c))
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *academicApi) removeCourse(ctx echo.Context) error {
	err := api.svc.RemoveCourse(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == academic.ErrCourseNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "removing course")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) clearCourses(ctx echo.Context) error {
	if err := api.svc.ClearCourses(ctx.Request().Context()); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summary()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *academicApi) recommend(ctx echo.Context) error {
	var data academic.RecommendationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecommendationRequest")
	}
	rec, err := api.svc.Recommend(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *academicApi) export(ctx echo.Context) error {
	rep, err := api.svc.Report(time.Now())
	if err != nil {
		return err
	}
	file, err := api.exporter.Export(ctx.Request().Context(), rep)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ExportResponse{File: file})
}
