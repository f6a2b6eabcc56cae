// Package viewset binds an ordered list of sibling view templates to a
// basepath and resolves which sibling is active for a location.
//
// A Set compiles each relative template path against the basepath once at
// construction; matching, parameter extraction, and interpolation then run
// over the precompiled segments. Sets are immutable after construction and
// safe for concurrent use.
//
// # Usage
//
//	set := viewset.New("/app", []string{"/", "users", "users/:id"})
//
//	active := set.Resolve("/app/users/42", viewset.NoneActive) // 2
//	params := set.Params(active, "/app/users/42")              // map[id:42]
//
//	// Switch to a sibling, carrying the id segment over positionally.
//	href := set.Interpolate(2, "/app/users/42?tab=posts")      // "/app/users/42"
package viewset
