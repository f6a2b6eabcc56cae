package viewset

import (
	"github.com/outlet-dev/outlet/pkg/routepath"
)

// NoneActive is the conventional default index meaning "no active sibling".
const NoneActive = -1

// view is one compiled sibling template.
type view struct {
	// template is the absolute template after basepath normalization
	template string

	// segs are the compiled template segments
	segs []routepath.Segment

	// hasParams records at compile time whether any segment is dynamic
	hasParams bool

	// isRoot marks the universal-match fallback template
	isRoot bool
}

// Set is an ordered, immutable list of sibling view templates compiled
// against a basepath. Identity is positional: a sibling is referred to by
// its index in the list, never by name.
type Set struct {
	basepath string
	views    []view
}

// New compiles the given relative template paths against the basepath.
// An empty or "/" path is the root alias and resolves to the basepath
// itself. Order is preserved and significant for Resolve.
func New(basepath string, paths []string) *Set {
	if basepath == "" {
		basepath = "/"
	}
	s := &Set{basepath: basepath}
	s.views = make([]view, len(paths))
	for i, p := range paths {
		abs := routepath.Normalize(p, basepath)
		segs := routepath.ParseTemplate(abs)
		s.views[i] = view{
			template:  abs,
			segs:      segs,
			hasParams: routepath.HasParams(segs),
			isRoot:    abs == "/",
		}
	}
	return s
}

// Basepath returns the basepath the set was compiled against.
func (s *Set) Basepath() string {
	return s.basepath
}

// Len returns the number of sibling templates.
func (s *Set) Len() int {
	return len(s.views)
}

// Template returns the absolute template at index i, or "" when i is out
// of range.
func (s *Set) Template(i int) string {
	if i < 0 || i >= len(s.views) {
		return ""
	}
	return s.views[i].template
}

// Resolve selects the active sibling index for a location, or defaultIndex
// when nothing matches. The rule is the single-pass scan of
// routepath.ResolveActive: last matching non-root template wins, the root
// template claims the slot only while nothing has matched yet.
func (s *Set) Resolve(location string, defaultIndex int) int {
	active := defaultIndex
	for i, v := range s.views {
		if !routepath.MatchSegments(v.segs, location) {
			continue
		}
		if !v.isRoot {
			active = i
		} else if active == defaultIndex {
			active = i
		}
	}
	return active
}

// Params extracts the named parameters of the sibling at index i from a
// location. Returns nil when i is out of range or the template has no
// dynamic segments.
func (s *Set) Params(i int, location string) map[string]string {
	if i < 0 || i >= len(s.views) {
		return nil
	}
	if !s.views[i].hasParams {
		// Absent, not empty: extraction would return nil anyway, so the
		// compile-time flag skips the split entirely.
		return nil
	}
	return routepath.ExtractParams(s.views[i].template, location)
}

// Interpolate builds a concrete destination path for the sibling at index
// i, filling its dynamic segments from the current location's same-position
// segments. Returns "" when i is out of range.
func (s *Set) Interpolate(i int, currentLocation string) string {
	if i < 0 || i >= len(s.views) {
		return ""
	}
	return routepath.Interpolate(s.views[i].template, currentLocation)
}
