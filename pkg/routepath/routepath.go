package routepath

import "strings"

// Normalize joins a relative template path with a basepath into an absolute
// template.
//
// An empty or "/" path is the root alias: the absolute template is the
// basepath itself. Otherwise the path is appended to the basepath with a
// single joining slash (the root basepath contributes nothing, so templates
// under "/" don't start with "//").
//
// No character validation is performed; callers supply relative paths
// without a leading slash.
func Normalize(path, base string) string {
	if path == "" || path == "/" {
		return base
	}
	prefix := base
	if base == "/" {
		prefix = ""
	}
	return prefix + "/" + path
}

// Matches reports whether a template matches a location's pathname.
//
// The root template "/" matches every location unconditionally; it is used
// as a fallback, never as an exclusive match. For all other templates the
// query string is stripped, both sides are split on "/" with empty tokens
// discarded, and prefix matching is applied: every template segment must
// align with the location segment at the same position (literal equality,
// or any non-empty token for a ":name" parameter). Extra trailing location
// segments are accepted, so a template can act as a prefix for nested
// content. A template with more segments than the location never matches.
func Matches(template, location string) bool {
	if template == "/" {
		return true
	}
	return MatchSegments(ParseTemplate(template), location)
}

// ResolveActive selects the active index among an ordered list of sibling
// templates for a location, or defaultIndex when nothing matches.
//
// Templates are scanned in their given order, which is significant and
// never re-sorted by specificity. The last matching non-root template wins:
// a later route may overwrite an earlier match, so callers can declare
// overlapping or catch-all routes in document order. The root template "/"
// is a restrained fallback: it claims the slot only while nothing has
// matched yet, and a later non-root match still supersedes it because the
// scan does not stop.
func ResolveActive(templates []string, location string, defaultIndex int) int {
	active := defaultIndex
	for i, tpl := range templates {
		if !Matches(tpl, location) {
			continue
		}
		if tpl != "/" {
			active = i
		} else if active == defaultIndex {
			active = i
		}
	}
	return active
}

// ExtractParams returns the mapping of parameter name to the raw location
// token captured at the same position, or nil when the template has no
// parameters. Callers distinguish "no params" (nil) from an empty map when
// merging with other context.
//
// Unlike Matches, the splits here are raw and positional: both strings are
// split on "/" with empty tokens kept, including the empty leading token
// from the leading slash, so capture positions line up with the template
// as written. Values are not decoded. Duplicate parameter names overwrite
// earlier captures. A parameter position beyond the end of the location's
// tokens is left unset; a missing key is a data-quality issue for the
// caller, not an error.
func ExtractParams(template, location string) map[string]string {
	tplTokens := strings.Split(template, "/")
	locTokens := strings.Split(location, "/")

	var params map[string]string
	for i, tok := range tplTokens {
		if !strings.HasPrefix(tok, ":") {
			continue
		}
		if params == nil {
			params = make(map[string]string)
		}
		if i < len(locTokens) {
			params[tok[1:]] = locTokens[i]
		}
	}
	return params
}

// Interpolate builds a concrete destination path from a target template and
// the current location, substituting each ":name" segment with the current
// location's same-position segment. Values carry over positionally, not by
// name, so a resource id in the path persists when switching between
// sibling views.
//
// The query string is stripped from the location and both sides are split
// with empty tokens discarded, mirroring Matches. When the location has no
// segment at a parameter's position the empty string is substituted; the
// result then contains an empty segment, which callers avoid by confirming
// a plausible match shape first.
func Interpolate(template, currentLocation string) string {
	path, _ := SplitPathAndQuery(currentLocation)
	locTokens := splitPath(path)

	segs := ParseTemplate(template)
	out := make([]string, len(segs))
	for i, seg := range segs {
		if seg.Param {
			if i < len(locTokens) {
				out[i] = locTokens[i]
			}
			continue
		}
		out[i] = seg.Value
	}
	return "/" + strings.Join(out, "/")
}

// SplitPathAndQuery splits a location into pathname and query components.
// The split is on the first "?"; the query is returned without the leading
// "?" and is empty when no "?" is present. The query is not decoded and not
// parsed into pairs.
func SplitPathAndQuery(location string) (path, query string) {
	path, query, _ = strings.Cut(location, "?")
	return path, query
}
