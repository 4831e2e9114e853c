package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
)

func (a *App) adminCoursesView(ctx context.Context, _ *router.Match) (string, error) {
	a.printf("== Admin: courses ==\n")

	depts, err := a.svc.Auth.FetchDepartments(ctx)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load departments"))
	}

	var filter models.CourseFilter
	if len(depts) > 0 {
		a.printf("Filter by department (empty for all):\n")
		if filter.DepartmentID, err = a.chooseDepartment(depts); err != nil {
			return "", err
		}
	}
	level, err := a.prompt("Level (empty for all)")
	if err != nil {
		return "", err
	}
	filter.Level = models.FlexID(level)

	courses, err := a.svc.Admin.ListCourses(ctx, filter)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load courses"))
		return "", nil
	}
	if len(courses) == 0 {
		a.printf("No courses match.\n")
	} else {
		printCourses(a, courses)
	}

	if !a.confirm("Create a course?") {
		return "", nil
	}

	var nc models.NewCourse
	if nc.DepartmentID, err = a.chooseDepartment(depts); err != nil {
		return "", err
	}
	code, err := a.prompt("Course code (e.g. CSC 201)")
	if err != nil {
		return "", err
	}
	title, err := a.prompt("Course title")
	if err != nil {
		return "", err
	}
	level, err = a.prompt("Level")
	if err != nil {
		return "", err
	}
	nc.Code, nc.Title, nc.Level = strings.ToUpper(code), title, models.FlexID(level)

	if err := a.validate.Validate(nc); err != nil {
		a.printf("%v\n", err)
		return "", nil
	}
	if _, err := a.svc.Admin.CreateCourse(ctx, nc); err != nil {
		a.printf("%s\n", describeError(err, "Could not create the course"))
		return "", nil
	}
	a.printf("Course %s created.\n", nc.Code)
	return "", nil
}

func (a *App) adminQuestionsView(ctx context.Context, m *router.Match) (string, error) {
	courseID := models.FlexID(m.Param("id"))
	a.printf("== Admin: questions for course %s ==\n", courseID)

	questions, err := a.svc.Questions.AdminList(ctx, courseID)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load questions"))
		return "", nil
	}
	if len(questions) == 0 {
		a.printf("The question bank is empty.\n")
	}
	for i, q := range questions {
		a.printf("  %d. %s", i+1, q.QuestionText)
		if q.CorrectOption != "" {
			a.printf(" [%s]", q.CorrectOption)
		}
		a.printf("\n")
	}

	if !a.confirm("Add a question?") {
		return "", nil
	}

	text, err := a.prompt("Question text")
	if err != nil {
		return "", err
	}
	lines, err := GetLines(a.reader, "Options, one per line (empty line to finish)", a.out)
	if err != nil {
		return "", err
	}
	opts := make(models.Options, 0, len(lines))
	for i, l := range lines {
		opts = append(opts, models.Option{Key: string(rune('A' + i)), Text: l})
	}
	correct, err := a.prompt("Correct option letter")
	if err != nil {
		return "", err
	}

	nq := models.NewQuestion{CourseID: courseID, QuestionText: text, Options: opts, CorrectOption: strings.ToUpper(correct)}
	if err := a.validate.Validate(nq); err != nil {
		a.printf("%v\n", err)
		return "", nil
	}
	if _, err := a.svc.Questions.AdminCreate(ctx, nq); err != nil {
		a.printf("%s\n", describeError(err, "Could not add the question"))
		return "", nil
	}
	a.printf("Question added.\n")
	return "", nil
}

func (a *App) confirm(label string) bool {
	s, err := a.prompt(label + " (y/N)")
	return err == nil && strings.EqualFold(s, "y")
}
