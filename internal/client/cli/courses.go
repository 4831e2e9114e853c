package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
	"github.com/dmitrijs2005/jabuspark/internal/client/services"
)

func (a *App) coursesView(ctx context.Context, _ *router.Match) (string, error) {
	courses, err := a.svc.Courses.List(ctx)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load courses"))
		return "", nil
	}

	a.printf("== Courses ==\n")
	if len(courses) == 0 {
		a.printf("No courses yet.\n")
		return "", nil
	}
	printCourses(a, courses)
	a.printf("Open one with: course <id>\n")
	return "", nil
}

func printCourses(a *App, courses []models.Course) {
	for _, c := range courses {
		a.printf("  %-6s %-10s %s\n", c.ID, c.Code, c.Title)
	}
}

// lookupCourse resolves the :id parameter of m. ok is false when the course
// could not be shown; the reason has been printed.
func (a *App) lookupCourse(ctx context.Context, m *router.Match) (*models.Course, bool) {
	id := models.FlexID(m.Param("id"))
	c, err := a.svc.Courses.Get(ctx, id)
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		a.printf("Course %s not found.\n", id)
		return nil, false
	case err != nil:
		a.printf("%s\n", describeError(err, "Could not load the course"))
		return nil, false
	}
	return c, true
}

func (a *App) courseDetailView(ctx context.Context, m *router.Match) (string, error) {
	c, ok := a.lookupCourse(ctx, m)
	if !ok {
		return "", nil
	}

	a.printf("== %s %s ==\n", c.Code, c.Title)
	if c.Level != "" {
		a.printf("Level %s\n", c.Level)
	}

	materials, err := a.svc.Materials.List(ctx, c.ID)
	switch {
	case err != nil:
		a.printf("%s\n", describeError(err, "Could not load materials"))
	case len(materials) == 0:
		a.printf("No materials yet.\n")
	default:
		a.printf("Materials:\n")
		for _, mat := range materials {
			a.printf("  %-6s %s", mat.ID, mat.Title)
			if mat.FileURL != "" {
				a.printf("  %s", mat.FileURL)
			}
			a.printf("\n")
		}
	}

	a.printf("Next: drill %[1]s, ask %[1]s, theory %[1]s\n", c.ID)
	return "", nil
}

// Upload sends a course material file. The caller must be logged in.
func (a *App) Upload(ctx context.Context, courseID, file, title string) error {
	if !a.isLoggedIn(ctx) {
		a.printf("Log in first.\n")
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		a.printf("Cannot open %s: %v\n", file, err)
		return err
	}
	defer f.Close()

	mat, err := a.svc.Materials.Upload(ctx, models.MaterialUpload{
		CourseID: models.FlexID(courseID),
		Title:    title,
		FileName: filepath.Base(file),
		Content:  f,
	})
	if err != nil {
		a.printf("%s\n", describeError(err, "Upload failed"))
		return err
	}
	a.printf("Uploaded %q (material %s).\n", mat.Title, mat.ID)
	return nil
}
