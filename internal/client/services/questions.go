package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// QuestionService covers the student question bank and the admin question
// console.
type QuestionService interface {
	QuickDrill(ctx context.Context, q models.QuickDrillQuery) ([]models.Question, error)
	Explanation(ctx context.Context, questionID models.FlexID) (*models.Explanation, error)
	AdminList(ctx context.Context, courseID models.FlexID) ([]models.Question, error)
	AdminCreate(ctx context.Context, q models.NewQuestion) (json.RawMessage, error)
}

type questionService struct {
	client client.Client
}

func NewQuestionService(c client.Client) QuestionService {
	return &questionService{client: c}
}

// QuickDrill fetches drill questions for a course. NumQuestions <= 0 asks
// for the full bank; MaterialID narrows the drill to one material when it
// is a positive number.
func (s *questionService) QuickDrill(ctx context.Context, q models.QuickDrillQuery) ([]models.Question, error) {
	params := url.Values{"course_id": {q.CourseID.String()}}
	if q.NumQuestions > 0 {
		params.Set("num_questions", strconv.Itoa(q.NumQuestions))
	}
	if n, err := q.MaterialID.Int64(); err == nil && n > 0 {
		params.Set("material_id", q.MaterialID.String())
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, "/questions/list.php", params, &raw); err != nil {
		return nil, fmt.Errorf("quick drill error: %w", err)
	}
	return client.ExtractList[models.Question](raw, "questions"), nil
}

func (s *questionService) Explanation(ctx context.Context, questionID models.FlexID) (*models.Explanation, error) {
	body := struct {
		QuestionID models.FlexID `json:"question_id"`
	}{questionID}

	var raw json.RawMessage
	if err := s.client.Post(ctx, "/question_explanation.php", body, &raw); err != nil {
		return nil, fmt.Errorf("question explanation error: %w", err)
	}

	var e models.Explanation
	if err := client.DecodeData(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *questionService) AdminList(ctx context.Context, courseID models.FlexID) ([]models.Question, error) {
	var raw json.RawMessage
	q := url.Values{"course_id": {courseID.String()}}
	if err := s.client.Get(ctx, "/admin/questions.php", q, &raw); err != nil {
		return nil, fmt.Errorf("list questions error: %w", err)
	}
	return client.ExtractList[models.Question](raw, "questions"), nil
}

func (s *questionService) AdminCreate(ctx context.Context, q models.NewQuestion) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/admin/questions.php", q, &raw); err != nil {
		return nil, fmt.Errorf("create question error: %w", err)
	}
	return client.Unwrap(raw), nil
}
