package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
)

// askView is a chat with the course tutor; an empty question ends it.
func (a *App) askView(ctx context.Context, m *router.Match) (string, error) {
	c, ok := a.lookupCourse(ctx, m)
	if !ok {
		return "", nil
	}
	a.printf("== Ask Jabuspark: %s %s ==\n", c.Code, c.Title)

	for {
		q, err := a.prompt("Your question (empty to finish)")
		if err != nil {
			return "", err
		}
		if q == "" {
			return "", nil
		}

		req := models.ChatRequest{CourseID: c.ID, CourseCode: c.Code.String(), CourseTitle: c.Title, Question: q}
		reply, err := a.svc.AI.Ask(ctx, req)
		if err != nil {
			a.printf("%s\n", describeError(err, "The tutor could not answer"))
			continue
		}
		a.printf("%s\n", reply)
	}
}

func (a *App) theoryView(ctx context.Context, m *router.Match) (string, error) {
	c, ok := a.lookupCourse(ctx, m)
	if !ok {
		return "", nil
	}
	a.printf("== Theory practice: %s %s ==\n", c.Code, c.Title)

	question, err := a.prompt("Question")
	if err != nil {
		return "", err
	}
	answer, err := GetMultiline(a.reader, "Your answer", a.out)
	if err != nil {
		return "", err
	}

	req := models.TheoryRequest{
		CourseID:    c.ID,
		CourseCode:  c.Code.String(),
		CourseTitle: c.Title,
		Question:    question,
		Answer:      answer,
	}
	if err := a.validate.Validate(req); err != nil {
		a.printf("%v\n", err)
		return "", nil
	}

	mark, err := a.svc.Theory.Mark(ctx, req)
	if err != nil {
		a.printf("%s\n", describeError(err, "Theory marking failed"))
		return "", nil
	}

	if mark.Score != nil {
		if mark.MaxScore != nil {
			a.printf("Score: %s/%s\n", formatScore(*mark.Score), formatScore(*mark.MaxScore))
		} else {
			a.printf("Score: %s\n", formatScore(*mark.Score))
		}
	}
	if mark.Feedback != "" {
		a.printf("%s\n", mark.Feedback)
	}
	if mark.Score == nil && mark.Feedback == "" {
		a.printf("%s\n", mark.Raw)
	}
	return "", nil
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
