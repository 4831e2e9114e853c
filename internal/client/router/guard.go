package router

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/common"
)

// Names of the routes the guard redirects to, and the query parameter that
// carries the originally requested path.
const (
	LoginRoute     = "login"
	DashboardRoute = "dashboard"
	RedirectParam  = "redirect"
)

// Session is the part of the client session the guard looks at.
type Session struct {
	Authenticated bool
	// Role is the role of the stored user. Empty counts as the default
	// role.
	Role string
}

// SessionSource is implemented by session.Store.
type SessionSource interface {
	GetToken(ctx context.Context) (string, bool)
	GetUser(ctx context.Context) (*models.User, bool)
}

// CurrentSession snapshots src. A nil src is an anonymous session.
func CurrentSession(ctx context.Context, src SessionSource) Session {
	if src == nil {
		return Session{}
	}
	var s Session
	_, s.Authenticated = src.GetToken(ctx)
	if u, ok := src.GetUser(ctx); ok {
		s.Role = common.NormalizeRole(u.Role)
	}
	return s
}

// Decision is the outcome of Guard. The zero value allows navigation.
type Decision struct {
	// Redirect names the route to go to instead; empty means allow.
	Redirect string
	Query    url.Values
}

func (d Decision) Allowed() bool { return d.Redirect == "" }

// Guard decides whether a navigation to a route with meta, requested as
// fullPath, may proceed for session s. Rules apply in order:
//
//  1. requires auth and not authenticated: login, with redirect=fullPath
//  2. guest only and authenticated: dashboard
//  3. requires a role the user does not have (case-insensitive): dashboard
//  4. otherwise allow
func Guard(meta Meta, fullPath string, s Session) Decision {
	switch {
	case meta.RequiresAuth && !s.Authenticated:
		return Decision{Redirect: LoginRoute, Query: url.Values{RedirectParam: {fullPath}}}
	case meta.GuestOnly && s.Authenticated:
		return Decision{Redirect: DashboardRoute}
	case meta.RequiresRole != "" && !common.RoleMatches(s.Role, meta.RequiresRole):
		return Decision{Redirect: DashboardRoute}
	default:
		return Decision{}
	}
}
