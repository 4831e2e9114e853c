package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
	"github.com/dmitrijs2005/jabuspark/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView prompts for credentials. On success it forwards to the page
// named by the redirect query parameter, or the dashboard. An empty email
// cancels.
func (a *App) loginView(ctx context.Context, m *router.Match) (string, error) {
	a.printf("== Log in ==\n")

	email, err := a.prompt("Email (empty to cancel)")
	if err != nil {
		return "", err
	}
	if email == "" {
		a.printf("Login cancelled.\n")
		return "", nil
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", err
	}
	// Best effort: the string copy sent in the request cannot be wiped.
	defer common.WipeByteArray(password)

	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := a.validate.Validate(req); err != nil {
		a.printf("%v\n", err)
		return "", nil
	}

	user, err := a.svc.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		a.log.Info(ctx, "login failed", "email", email, "error", err)
		a.printf("%s\n", describeError(err, "Login failed"))
		return "", nil
	}

	a.printf("Welcome, %s!\n", user.Name)
	return redirectTarget(m), nil
}

// redirectTarget returns the in-app path carried by the redirect query
// parameter, falling back to the dashboard.
func redirectTarget(m *router.Match) string {
	if m != nil {
		if r := m.Query.Get(router.RedirectParam); strings.HasPrefix(r, "/") && !strings.HasPrefix(r, "//") {
			return r
		}
	}
	return "/dashboard"
}

func (a *App) registerView(ctx context.Context, _ *router.Match) (string, error) {
	a.printf("== Create a student account ==\n")

	depts, err := a.svc.Auth.FetchDepartments(ctx)
	if err != nil {
		a.printf("%s\n", describeError(err, "Could not load departments"))
	}

	var req models.RegisterRequest
	if req.Name, err = a.prompt("Full name (empty to cancel)"); err != nil {
		return "", err
	}
	if req.Name == "" {
		a.printf("Registration cancelled.\n")
		return "", nil
	}
	if req.Email, err = a.prompt("Email"); err != nil {
		return "", err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", err
	}
	// Best effort, as in loginView.
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if req.DepartmentID, err = a.chooseDepartment(depts); err != nil {
		return "", err
	}
	if req.Level, err = a.prompt("Level (e.g. 100, 200)"); err != nil {
		return "", err
	}

	if err := a.validate.Validate(req); err != nil {
		a.printf("%v\n", err)
		return "", nil
	}

	res, err := a.svc.Auth.RegisterStudent(ctx, req)
	if err != nil {
		a.printf("%s\n", describeError(err, "Registration failed"))
		return "", nil
	}

	if res.AutoLoggedIn {
		a.printf("Account created. Welcome, %s!\n", res.User.Name)
		return "/dashboard", nil
	}
	msg := res.Message
	if msg == "" {
		msg = "Account created. Please log in."
	}
	a.printf("%s\n", msg)
	return "/login", nil
}

// chooseDepartment lists depts and reads a choice, either the list number
// or a department ID. With no list it asks for the ID directly.
func (a *App) chooseDepartment(depts []models.Department) (models.FlexID, error) {
	if len(depts) == 0 {
		id, err := a.prompt("Department ID")
		return models.FlexID(id), err
	}

	for i, d := range depts {
		if d.Faculty != "" {
			a.printf("  %d) %s (%s)\n", i+1, d.Name, d.Faculty)
		} else {
			a.printf("  %d) %s\n", i+1, d.Name)
		}
	}
	choice, err := a.prompt("Department (number)")
	if err != nil || choice == "" {
		return "", err
	}
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(depts) {
		return depts[n-1].ID, nil
	}
	for _, d := range depts {
		if d.ID.String() == choice {
			return d.ID, nil
		}
	}
	a.printf("Unknown department %q.\n", choice)
	return "", nil
}
