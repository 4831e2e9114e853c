package models

import (
	"encoding/json"
	"sort"
)

// Option is one answer choice of a multiple-choice question.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Options accepts either a JSON object ({"A": "...", "B": "..."}, sorted by
// key) or a JSON array of strings (keyed A, B, C, ...).
type Options []Option

func (o *Options) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		out := make(Options, 0, len(list))
		for i, text := range list {
			out = append(out, Option{Key: optionKey(i), Text: text})
		}
		*o = out
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Options, 0, len(keys))
	for _, k := range keys {
		out = append(out, Option{Key: k, Text: m[k]})
	}
	*o = out
	return nil
}

func (o Options) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(o))
	for _, opt := range o {
		m[opt.Key] = opt.Text
	}
	return json.Marshal(m)
}

func optionKey(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return string(rune('A'+i/26-1)) + string(rune('A'+i%26))
}

// Question is a multiple-choice question from the course question bank.
type Question struct {
	ID            FlexID  `json:"id"`
	CourseID      FlexID  `json:"course_id,omitempty"`
	MaterialID    FlexID  `json:"material_id,omitempty"`
	QuestionText  string  `json:"question_text"`
	Options       Options `json:"options"`
	CorrectOption string  `json:"correct_option,omitempty"`
}

// NewQuestion is the body used by admins to add a question.
type NewQuestion struct {
	CourseID      FlexID  `json:"course_id" validate:"required"`
	QuestionText  string  `json:"question_text" validate:"required"`
	Options       Options `json:"options" validate:"min=2"`
	CorrectOption string  `json:"correct_option" validate:"required"`
}

// QuickDrillQuery selects questions for a practice drill. Zero NumQuestions
// means the full bank; empty MaterialID means all materials.
type QuickDrillQuery struct {
	CourseID     FlexID
	NumQuestions int
	MaterialID   FlexID
}

// Explanation is the (possibly cached) AI explanation of a question.
type Explanation struct {
	QuestionID  FlexID `json:"question_id"`
	Explanation string `json:"explanation"`
	Cached      bool   `json:"cached"`
}
