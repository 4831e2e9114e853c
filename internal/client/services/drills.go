package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// DrillService runs server-side drill sessions and records finished quick
// drills.
type DrillService interface {
	Start(ctx context.Context, courseID models.FlexID, numQuestions int) (*models.DrillSession, error)
	// Submit sends answers keyed by question ID.
	Submit(ctx context.Context, drillID models.FlexID, answers map[string]string) (*models.DrillResult, error)
	Complete(ctx context.Context, d models.CompletedDrill) (json.RawMessage, error)
}

type drillService struct {
	client client.Client
}

func NewDrillService(c client.Client) DrillService {
	return &drillService{client: c}
}

func (s *drillService) Start(ctx context.Context, courseID models.FlexID, numQuestions int) (*models.DrillSession, error) {
	body := struct {
		CourseID     models.FlexID `json:"course_id"`
		NumQuestions int           `json:"num_questions"`
	}{courseID, numQuestions}

	var raw json.RawMessage
	if err := s.client.Post(ctx, "/drills/start.php", body, &raw); err != nil {
		return nil, fmt.Errorf("start drill error: %w", err)
	}

	var d models.DrillSession
	if err := client.DecodeData(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *drillService) Submit(ctx context.Context, drillID models.FlexID, answers map[string]string) (*models.DrillResult, error) {
	if answers == nil {
		answers = map[string]string{}
	}
	body := struct {
		DrillID models.FlexID     `json:"drill_id"`
		Answers map[string]string `json:"answers"`
	}{drillID, answers}

	var raw json.RawMessage
	if err := s.client.Post(ctx, "/drills/submit.php", body, &raw); err != nil {
		return nil, fmt.Errorf("submit drill error: %w", err)
	}

	var res models.DrillResult
	if err := client.DecodeData(raw, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *drillService) Complete(ctx context.Context, d models.CompletedDrill) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/drills/complete.php", d, &raw); err != nil {
		return nil, fmt.Errorf("complete drill error: %w", err)
	}
	return client.Unwrap(raw), nil
}
