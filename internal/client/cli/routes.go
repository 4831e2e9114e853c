package cli

import (
	"context"

	"github.com/dmitrijs2005/jabuspark/internal/client/router"
)

// Route names of the client.
const (
	routeDashboard            = router.DashboardRoute
	routeLogin                = router.LoginRoute
	routeRegister             = "register"
	routeCourses              = "courses"
	routeCourseDetail         = "course-detail"
	routeCourseDrill          = "course-drill"
	routeCourseAsk            = "course-ask"
	routeCourseTheory         = "course-theory"
	routeAdminCourses         = "admin-courses"
	routeAdminCourseQuestions = "admin-course-questions"
)

var (
	authOnly  = router.Meta{RequiresAuth: true}
	guestOnly = router.Meta{GuestOnly: true}
	adminOnly = router.Meta{RequiresAuth: true, RequiresRole: "admin"}
)

// Routes is the route table of the client.
func Routes() []router.Route {
	return []router.Route{
		{Path: "/", Redirect: "/dashboard"},
		{Path: "/dashboard", Name: routeDashboard, Meta: authOnly},
		{Path: "/courses", Name: routeCourses, Meta: authOnly},
		{Path: "/courses/:id", Name: routeCourseDetail, Meta: authOnly},
		{Path: "/courses/:id/drill", Name: routeCourseDrill, Meta: authOnly},
		{Path: "/courses/:id/ask", Name: routeCourseAsk, Meta: authOnly},
		{Path: "/courses/:id/theory", Name: routeCourseTheory, Meta: authOnly},
		{Path: "/login", Name: routeLogin, Meta: guestOnly},
		{Path: "/register", Name: routeRegister, Meta: guestOnly},
		{Path: "/admin/courses", Name: routeAdminCourses, Meta: adminOnly},
		{Path: "/admin/courses/:id/questions", Name: routeAdminCourseQuestions, Meta: adminOnly},
	}
}

// view renders one screen. A non-empty next is navigated to afterwards.
type view func(a *App, ctx context.Context, m *router.Match) (next string, err error)

func defaultViews() map[string]view {
	return map[string]view{
		routeDashboard:            (*App).dashboardView,
		routeLogin:                (*App).loginView,
		routeRegister:             (*App).registerView,
		routeCourses:              (*App).coursesView,
		routeCourseDetail:         (*App).courseDetailView,
		routeCourseDrill:          (*App).drillView,
		routeCourseAsk:            (*App).askView,
		routeCourseTheory:         (*App).theoryView,
		routeAdminCourses:         (*App).adminCoursesView,
		routeAdminCourseQuestions: (*App).adminQuestionsView,
	}
}
