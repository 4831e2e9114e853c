package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

type MaterialService interface {
	List(ctx context.Context, courseID models.FlexID) ([]models.Material, error)
	Upload(ctx context.Context, m models.MaterialUpload) (*models.Material, error)
}

type materialService struct {
	client client.Client
}

func NewMaterialService(c client.Client) MaterialService {
	return &materialService{client: c}
}

func (s *materialService) List(ctx context.Context, courseID models.FlexID) ([]models.Material, error) {
	var raw json.RawMessage
	q := url.Values{"course_id": {courseID.String()}}
	if err := s.client.Get(ctx, "/materials.php", q, &raw); err != nil {
		return nil, fmt.Errorf("list materials error: %w", err)
	}
	return client.ExtractList[models.Material](raw, "materials"), nil
}

// Upload sends the file as multipart/form-data and returns the "material"
// record of the response.
func (s *materialService) Upload(ctx context.Context, m models.MaterialUpload) (*models.Material, error) {
	form := client.MultipartForm{
		Fields: map[string]string{"course_id": m.CourseID.String()},
		Files:  []client.FilePart{{Field: "file", FileName: m.FileName, Content: m.Content}},
	}
	if m.Title != "" {
		form.Fields["title"] = m.Title
	}

	var raw json.RawMessage
	if err := s.client.PostMultipart(ctx, "/materials.php", form, &raw); err != nil {
		return nil, fmt.Errorf("upload material error: %w", err)
	}

	var body struct {
		Material *models.Material `json:"material"`
	}
	if err := client.DecodeData(raw, &body); err != nil {
		return nil, err
	}
	if body.Material == nil {
		return nil, fmt.Errorf("%w: no material in response", client.ErrMalformedResponse)
	}
	return body.Material, nil
}
