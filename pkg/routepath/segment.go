package routepath

import "strings"

// Segment is a single "/"-delimited token of a template, either a literal
// or a named parameter.
type Segment struct {
	// Value is the literal text, or the parameter name for param segments.
	Value string

	// Param indicates this segment is a ":name" dynamic parameter.
	Param bool
}

// ParseTemplate compiles a template into its segment sequence.
// Empty tokens from leading, trailing, or duplicate slashes are discarded.
// The root template "/" compiles to an empty sequence.
//
// Compiling once and matching against the result avoids re-parsing the
// template string on every match.
func ParseTemplate(template string) []Segment {
	tokens := splitPath(template)
	if len(tokens) == 0 {
		return nil
	}
	segs := make([]Segment, len(tokens))
	for i, tok := range tokens {
		if strings.HasPrefix(tok, ":") {
			segs[i] = Segment{Value: tok[1:], Param: true}
		} else {
			segs[i] = Segment{Value: tok}
		}
	}
	return segs
}

// HasParams reports whether any segment is a parameter.
func HasParams(segs []Segment) bool {
	for _, s := range segs {
		if s.Param {
			return true
		}
	}
	return false
}

// MatchSegments matches precompiled template segments against a location.
// Semantics are identical to Matches: the query string is stripped, the
// location is split with empty tokens discarded, and prefix matching is
// applied. An empty segment sequence (the root template) matches anything.
func MatchSegments(segs []Segment, location string) bool {
	if len(segs) == 0 {
		return true
	}
	path, _ := SplitPathAndQuery(location)
	locTokens := splitPath(path)
	if len(segs) > len(locTokens) {
		return false
	}
	for i, seg := range segs {
		if seg.Param {
			// Filtered tokens are never empty; existence is guaranteed
			// by the length check above.
			continue
		}
		if locTokens[i] != seg.Value {
			return false
		}
	}
	return true
}

// splitPath splits a path on "/" discarding empty tokens.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	// An interior "//" still yields empty tokens after Trim.
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
