// Package router resolves navigation targets of the terminal client and
// applies the route guard.
//
// # Overview
//
// A Router is built from a route table. Navigate takes a full path such as
// "/courses/7?tab=materials", matches it against the table (":name"
// segments capture parameters), follows static redirects, and asks Guard
// whether the current session may see the route. Guard redirects are
// followed too, so the result is always the route that will be shown.
//
// Guard is a pure function of the route metadata and a Session snapshot.
// It keeps no state, so evaluating it twice gives the same Decision.
//
// # Error Handling
//
// Unknown paths yield ErrNotFound, unknown route names ErrUnknownRoute, and
// redirect chains longer than MaxHops yield ErrRedirectLoop.
package router
