package models

import "encoding/json"

// ChatRequest asks the course assistant a question.
type ChatRequest struct {
	CourseID    FlexID `json:"courseId"`
	CourseCode  string `json:"courseCode"`
	CourseTitle string `json:"courseTitle"`
	Question    string `json:"question" validate:"required"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Reply string `json:"reply"`
}

// TheoryRequest submits a written answer for marking.
type TheoryRequest struct {
	CourseID    FlexID `json:"course_id"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Question    string `json:"question" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
}

// TheoryMark is the marking result. Score and MaxScore are nil when the
// backend does not send them; Raw always holds the full payload.
type TheoryMark struct {
	Score    *float64        `json:"score,omitempty"`
	MaxScore *float64        `json:"max_score,omitempty"`
	Feedback string          `json:"feedback,omitempty"`
	Raw      json.RawMessage `json:"-"`
}
