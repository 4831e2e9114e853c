package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// MaxHops bounds the number of redirects a single Navigate follows.
const MaxHops = 8

var (
	ErrNotFound     = errors.New("no route matches path")
	ErrUnknownRoute = errors.New("unknown route")
	ErrRedirectLoop = errors.New("too many redirects")
	ErrInvalidRoute = errors.New("invalid route")
)

// Meta is the access metadata of a route.
type Meta struct {
	RequiresAuth bool
	GuestOnly    bool
	RequiresRole string
}

// Route is one entry of the route table. A route with Redirect set is never
// shown; navigating to it continues at Redirect.
type Route struct {
	Path     string
	Name     string
	Redirect string
	Meta     Meta
}

// Match is a resolved navigation.
type Match struct {
	Route    Route
	Path     string
	FullPath string
	Params   map[string]string
	Query    url.Values
}

// Param returns the named path parameter.
func (m *Match) Param(name string) string {
	return m.Params[name]
}

type compiled struct {
	route    Route
	segments []string
}

type Router struct {
	routes   []compiled
	byName   map[string]int
	sessions SessionSource
}

// New validates the route table and builds a Router. sessions may be nil,
// in which case every navigation is anonymous.
func New(sessions SessionSource, routes ...Route) (*Router, error) {
	r := &Router{byName: make(map[string]int, len(routes)), sessions: sessions}
	for i, rt := range routes {
		if rt.Path == "" || rt.Path[0] != '/' {
			return nil, fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, rt.Path)
		}
		if rt.Meta.RequiresAuth && rt.Meta.GuestOnly {
			return nil, fmt.Errorf("%w: %q is both auth-only and guest-only", ErrInvalidRoute, rt.Path)
		}
		if rt.Name != "" {
			if _, dup := r.byName[rt.Name]; dup {
				return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidRoute, rt.Name)
			}
			r.byName[rt.Name] = i
		}
		r.routes = append(r.routes, compiled{route: rt, segments: splitPath(rt.Path)})
	}
	return r, nil
}

// Routes returns the route table in declaration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, c := range r.routes {
		out = append(out, c.route)
	}
	return out
}

// Resolve matches fullPath against the table without redirects or guard.
func (r *Router) Resolve(fullPath string) (*Match, error) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, fullPath)
	}
	path := cleanPath(u.EscapedPath())
	segs := splitPath(path)

	for _, c := range r.routes {
		params, ok := matchSegments(c.segments, segs)
		if !ok {
			continue
		}
		full := path
		if u.RawQuery != "" {
			full += "?" + u.RawQuery
		}
		return &Match{Route: c.route, Path: path, FullPath: full, Params: params, Query: u.Query()}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
}

// Navigate resolves fullPath for the current session and returns the route
// that ends up being shown.
func (r *Router) Navigate(ctx context.Context, fullPath string) (*Match, error) {
	target := fullPath
	for hop := 0; hop <= MaxHops; hop++ {
		m, err := r.Resolve(target)
		if err != nil {
			return nil, err
		}
		if m.Route.Redirect != "" {
			target = m.Route.Redirect
			continue
		}

		d := Guard(m.Route.Meta, m.FullPath, CurrentSession(ctx, r.sessions))
		if d.Allowed() {
			return m, nil
		}
		target, err = r.PathFor(d.Redirect, nil, d.Query)
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: starting at %q", ErrRedirectLoop, fullPath)
}

// PathFor builds the full path of the named route.
func (r *Router) PathFor(name string, params map[string]string, query url.Values) (string, error) {
	i, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	segs := r.routes[i].segments
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if strings.HasPrefix(s, ":") {
			v, ok := params[s[1:]]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %q needs parameter %q", ErrUnknownRoute, name, s[1:])
			}
			s = url.PathEscape(v)
		}
		parts = append(parts, s)
	}

	path := "/" + strings.Join(parts, "/")
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// Names returns the route names, sorted.
func (r *Router) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(segs[i])
			if err != nil {
				return nil, false
			}
			params[p[1:]] = v
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
