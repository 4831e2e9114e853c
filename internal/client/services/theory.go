package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// ErrTheoryMarking wraps marking failures that carry no server message.
var ErrTheoryMarking = errors.New("theory marking failed")

type TheoryService interface {
	Mark(ctx context.Context, req models.TheoryRequest) (*models.TheoryMark, error)
}

type theoryService struct {
	client client.Client
}

func NewTheoryService(c client.Client) TheoryService {
	return &theoryService{client: c}
}

// Mark submits a theory answer for grading. A failure carrying a server
// "error" or "message" is returned as *client.Error with that text; other
// failures wrap ErrTheoryMarking. A 2xx body whose "error" carries text is
// a failure too.
func (s *theoryService) Mark(ctx context.Context, req models.TheoryRequest) (*models.TheoryMark, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/theory_mark.php", req, &raw); err != nil {
		var apiErr *client.Error
		if errors.As(err, &apiErr) && apiErr.ServerMessage != "" {
			return nil, apiErr
		}
		return nil, fmt.Errorf("%w: %w", ErrTheoryMarking, err)
	}

	if msg := errorField(raw); msg != "" {
		return nil, &client.Error{StatusCode: http.StatusOK, ServerMessage: msg, Body: raw}
	}

	body := client.Unwrap(raw)
	var mark models.TheoryMark
	if err := json.Unmarshal(body, &mark); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTheoryMarking, client.ErrMalformedResponse)
	}
	mark.Raw = body
	return &mark, nil
}

// errorField returns the text of a 2xx body's "error" member. Only a
// non-empty string or an object with a message counts; null, false and
// the "message" member do not.
func errorField(raw json.RawMessage) string {
	var obj struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	return client.TextOf(obj.Error)
}
