package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
)

// drillView runs a quick drill from the course question bank and records
// the result. With ?mode=server the drill is started and scored by the
// server instead.
func (a *App) drillView(ctx context.Context, m *router.Match) (string, error) {
	c, ok := a.lookupCourse(ctx, m)
	if !ok {
		return "", nil
	}
	a.printf("== Drill: %s %s ==\n", c.Code, c.Title)

	n, err := a.askCount()
	if err != nil {
		return "", err
	}

	if m.Query.Get("mode") == "server" {
		return "", a.serverDrill(ctx, c, n)
	}

	query := models.QuickDrillQuery{CourseID: c.ID, NumQuestions: n, MaterialID: models.FlexID(m.Query.Get("material"))}
	questions, err := a.svc.Questions.QuickDrill(ctx, query)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load questions"))
		return "", nil
	}
	if len(questions) == 0 {
		a.printf("No questions yet for this course.\n")
		return "", nil
	}

	started := a.now()
	correct := 0
	for i, q := range questions {
		answer, err := a.askQuestion(i+1, len(questions), q)
		if err != nil {
			return "", err
		}
		right := q.CorrectOption != "" && strings.EqualFold(answer, q.CorrectOption)
		switch {
		case right:
			correct++
			a.printf("Correct.\n")
		case q.CorrectOption != "":
			a.printf("Wrong, the answer is %s.\n", strings.ToUpper(q.CorrectOption))
		}
		if err := a.offerExplanation(ctx, q); err != nil {
			return "", err
		}
	}

	a.printf("Score: %d/%d\n", correct, len(questions))

	_, err = a.svc.Drills.Complete(ctx, models.CompletedDrill{
		CourseID:        c.ID,
		NumQuestions:    len(questions),
		NumCorrect:      correct,
		Title:           "Quick drill",
		DrillSize:       len(questions),
		DurationSeconds: int(a.now().Sub(started) / time.Second),
	})
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not save the drill result"))
	}
	return "", nil
}

func (a *App) serverDrill(ctx context.Context, c *models.Course, n int) error {
	if n <= 0 {
		n = 10
	}
	d, err := a.svc.Drills.Start(ctx, c.ID, n)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not start the drill"))
		return nil
	}
	if d.Title != "" {
		a.printf("%s\n", d.Title)
	}

	answers := make(map[string]string, len(d.Questions))
	for i, q := range d.Questions {
		answer, err := a.askQuestion(i+1, len(d.Questions), q)
		if err != nil {
			return err
		}
		if answer != "" {
			answers[q.ID.String()] = strings.ToUpper(answer)
		}
	}

	res, err := a.svc.Drills.Submit(ctx, d.DrillID, answers)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not submit the drill"))
		return nil
	}
	a.printf("Score: %d/%d (%.0f%%)\n", res.NumCorrect, res.NumQuestions, res.Score)
	return nil
}

// askCount reads how many questions to drill; empty or "all" means the
// whole bank (0).
func (a *App) askCount() (int, error) {
	s, err := a.prompt("How many questions? (5, 10, 20 or empty for all)")
	if err != nil {
		return 0, err
	}
	if s == "" || strings.EqualFold(s, "all") {
		return 0, nil
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil || n < 0 {
		a.printf("Using all questions.\n")
		return 0, nil
	}
	return n, nil
}

func (a *App) askQuestion(num, total int, q models.Question) (string, error) {
	a.printf("\n%d/%d. %s\n", num, total, q.QuestionText)
	for _, opt := range q.Options {
		a.printf("  %s) %s\n", opt.Key, opt.Text)
	}
	return a.prompt("Your answer")
}

// offerExplanation fetches the explanation of q when the user asks for it.
func (a *App) offerExplanation(ctx context.Context, q models.Question) error {
	s, err := a.prompt("Enter for next, 'e' for an explanation")
	if err != nil || !strings.EqualFold(s, "e") {
		return err
	}
	exp, err := a.svc.Questions.Explanation(ctx, q.ID)
	if err != nil {
		a.printf("%s\n", describeError(err, "No explanation available"))
		return nil
	}
	a.printf("%s\n", exp.Explanation)
	return nil
}
