package models

import "io"

// Material is a study document attached to a course.
type Material struct {
	ID        FlexID `json:"id"`
	CourseID  FlexID `json:"course_id,omitempty"`
	Title     string `json:"title"`
	FileURL   string `json:"file_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MaterialUpload describes a file to attach to a course.
type MaterialUpload struct {
	CourseID FlexID
	Title    string
	FileName string
	Content  io.Reader
}
