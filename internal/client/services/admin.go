package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// AdminService is the admin course console.
type AdminService interface {
	ListCourses(ctx context.Context, f models.CourseFilter) ([]models.Course, error)
	CreateCourse(ctx context.Context, c models.NewCourse) (json.RawMessage, error)
}

type adminService struct {
	client client.Client
}

func NewAdminService(c client.Client) AdminService {
	return &adminService{client: c}
}

// ListCourses sends only the filter fields that are set.
func (s *adminService) ListCourses(ctx context.Context, f models.CourseFilter) ([]models.Course, error) {
	q := url.Values{}
	if f.DepartmentID != "" {
		q.Set("department_id", f.DepartmentID.String())
	}
	if f.Level != "" {
		q.Set("level", f.Level.String())
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, "/courses/admin_list.php", q, &raw); err != nil {
		return nil, fmt.Errorf("admin list courses error: %w", err)
	}
	return client.ExtractList[models.Course](raw, "courses"), nil
}

func (s *adminService) CreateCourse(ctx context.Context, c models.NewCourse) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/courses/admin_create.php", c, &raw); err != nil {
		return nil, fmt.Errorf("admin create course error: %w", err)
	}
	return client.Unwrap(raw), nil
}
