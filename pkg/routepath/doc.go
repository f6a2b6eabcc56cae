// Package routepath implements the path-template algebra beneath the
// view-switching layer.
//
// The package provides:
//   - Template normalization against a basepath
//   - Prefix matching of a template against a location
//   - Active-sibling resolution over an ordered template list
//   - Named parameter extraction
//   - Positional interpolation of a target template from the current location
//   - Path/query splitting
//
// # Templates and Locations
//
// A template is an absolute route path whose "/"-delimited tokens are either
// literals or ":name" dynamic parameters:
//
//	/users          literal only
//	/users/:id      one parameter, "id"
//	/               the root template, a universal match
//
// A location is the current path plus an optional query string, owned by the
// navigation provider:
//
//	/users/42?tab=posts
//
// Matching is prefix matching: a template matches when all of its segments
// align with the location's leading segments; extra trailing location
// segments are accepted so a template can act as a prefix for nested content.
//
// # Purity
//
// Every function is a pure, total transform over its string inputs. Nothing
// here errors, allocates shared state, or performs I/O; all functions are
// safe for concurrent use.
//
// # Usage
//
//	tpl := routepath.Normalize("users/:id", "/app")
//	// tpl == "/app/users/:id"
//
//	routepath.Matches(tpl, "/app/users/42?tab=posts") // true
//	routepath.ExtractParams(tpl, "/app/users/42")     // map[id:42]
//
//	active := routepath.ResolveActive([]string{"/", "/users/:id"}, "/users/42", -1)
//	// active == 1
package routepath
