package services

import (
	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/logging"
)

// Set bundles every service bound to one API client.
type Set struct {
	Auth      AuthService
	Courses   CourseService
	Dashboard DashboardService
	Drills    DrillService
	Questions QuestionService
	Materials MaterialService
	AI        AIService
	Theory    TheoryService
	Admin     AdminService
}

func NewSet(c client.Client, session SessionWriter, log logging.Logger) *Set {
	return &Set{
		Auth:      NewAuthService(c, session, log),
		Courses:   NewCourseService(c),
		Dashboard: NewDashboardService(c),
		Drills:    NewDrillService(c),
		Questions: NewQuestionService(c),
		Materials: NewMaterialService(c),
		AI:        NewAIService(c),
		Theory:    NewTheoryService(c),
		Admin:     NewAdminService(c),
	}
}
