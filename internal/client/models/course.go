package models

// Course is a course visible to the signed-in student.
type Course struct {
	ID           FlexID `json:"id"`
	Code         FlexID `json:"code"`
	Title        string `json:"title"`
	Level        FlexID `json:"level,omitempty"`
	DepartmentID FlexID `json:"department_id,omitempty"`
}

// NewCourse is the body used to create a course.
type NewCourse struct {
	DepartmentID FlexID `json:"department_id" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Level        FlexID `json:"level" validate:"required"`
}

// CourseFilter narrows the admin course listing. Empty fields are not sent.
type CourseFilter struct {
	DepartmentID FlexID
	Level        FlexID
}
