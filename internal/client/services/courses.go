package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// ErrCourseNotFound is returned by Get when the course is not in the
// caller's course list.
var ErrCourseNotFound = errors.New("course not found")

// CourseService reads and maintains the logged-in student's courses.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id models.FlexID) (*models.Course, error)
	Create(ctx context.Context, c models.NewCourse) (json.RawMessage, error)
	Delete(ctx context.Context, id models.FlexID) (json.RawMessage, error)
}

type courseService struct {
	client client.Client
}

func NewCourseService(c client.Client) CourseService {
	return &courseService{client: c}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/courses/list.php", nil, &raw); err != nil {
		return nil, fmt.Errorf("list courses error: %w", err)
	}
	return client.ExtractList[models.Course](raw, "courses"), nil
}

// Get looks the course up in List. IDs are compared numerically when both
// sides are numbers, so "7" and 7 match.
func (s *courseService) Get(ctx context.Context, id models.FlexID) (*models.Course, error) {
	courses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if sameID(courses[i].ID, id) {
			return &courses[i], nil
		}
	}
	return nil, ErrCourseNotFound
}

func (s *courseService) Create(ctx context.Context, c models.NewCourse) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/courses/create.php", c, &raw); err != nil {
		return nil, fmt.Errorf("create course error: %w", err)
	}
	return client.Unwrap(raw), nil
}

func (s *courseService) Delete(ctx context.Context, id models.FlexID) (json.RawMessage, error) {
	var raw json.RawMessage
	q := url.Values{"id": {id.String()}}
	if err := s.client.Delete(ctx, "/courses/delete.php", q, &raw); err != nil {
		return nil, fmt.Errorf("delete course error: %w", err)
	}
	return client.Unwrap(raw), nil
}

func sameID(a, b models.FlexID) bool {
	ai, aerr := a.Int64()
	bi, berr := b.Int64()
	if aerr == nil && berr == nil {
		return ai == bi
	}
	return a == b
}
