package models

// DrillSession is a server-side drill started with POST /drills/start.php.
type DrillSession struct {
	DrillID   FlexID     `json:"drill_id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// DrillResult is the score of a submitted drill.
type DrillResult struct {
	NumCorrect   int     `json:"num_correct"`
	NumQuestions int     `json:"num_questions"`
	Score        float64 `json:"score"`
}

// CompletedDrill records a locally scored quick drill.
type CompletedDrill struct {
	CourseID        FlexID `json:"course_id"`
	NumQuestions    int    `json:"num_questions"`
	NumCorrect      int    `json:"num_correct"`
	Title           string `json:"title,omitempty"`
	DrillSize       int    `json:"drill_size,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// DrillRecord is a past drill, as listed on the dashboard.
type DrillRecord struct {
	ID           FlexID  `json:"id"`
	CourseID     FlexID  `json:"course_id,omitempty"`
	Title        string  `json:"title"`
	NumQuestions int     `json:"num_questions"`
	NumCorrect   int     `json:"num_correct"`
	Score        float64 `json:"score,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}
