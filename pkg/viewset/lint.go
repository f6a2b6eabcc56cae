package viewset

import (
	"github.com/outlet-dev/outlet/internal/errors"
	"github.com/outlet-dev/outlet/pkg/routepath"
)

// Lint diagnostic codes.
const (
	CodeDuplicateTemplate = "L001"
	CodeEmptyParamName    = "L002"
	CodeShadowedTemplate  = "L003"
	CodeDuplicateRoot     = "L004"
)

// Lint checks a set for templates that can never become active and for
// malformed parameter tokens. The resolver itself accepts any input; these
// are caller-configuration problems surfaced as diagnostics, not failures.
func Lint(s *Set) []*errors.Error {
	var diags []*errors.Error

	rootSeen := false
	for i, v := range s.views {
		for _, seg := range v.segs {
			if seg.Param && seg.Value == "" {
				diags = append(diags, errors.New(CodeEmptyParamName, errors.CategoryValidation,
					"template %q at index %d has a parameter with an empty name", v.template, i).
					WithSuggestion("write the segment as \":name\""))
			}
		}

		if v.isRoot {
			if rootSeen {
				diags = append(diags, errors.New(CodeDuplicateRoot, errors.CategoryValidation,
					"root template declared again at index %d", i).
					WithSuggestion("keep a single \"/\" fallback per sibling list"))
			}
			rootSeen = true
			continue
		}

		// Later siblings overwrite earlier matches, so an earlier template
		// subsumed by a later one can never end up active.
		for j := i + 1; j < len(s.views); j++ {
			w := s.views[j]
			if w.isRoot {
				continue
			}
			if w.template == v.template {
				diags = append(diags, errors.New(CodeDuplicateTemplate, errors.CategoryValidation,
					"template %q at index %d duplicates index %d", v.template, j, i).
					WithSuggestion("remove one of the duplicates; the later one always wins"))
				break
			}
			if subsumes(w.segs, v.segs) {
				diags = append(diags, errors.New(CodeShadowedTemplate, errors.CategoryValidation,
					"template %q at index %d is shadowed by %q at index %d", v.template, i, w.template, j).
					WithSuggestion("move %q after %q or remove it", v.template, w.template))
				break
			}
		}
	}

	return diags
}

// subsumes reports whether template a matches every location template b
// matches: a must be no longer than b, and each of a's segments must accept
// everything b's segment at the same position accepts (a param accepts any
// token; a literal accepts only the identical literal).
func subsumes(a, b []routepath.Segment) bool {
	if len(a) > len(b) {
		return false
	}
	for i, seg := range a {
		if seg.Param {
			continue
		}
		if b[i].Param || b[i].Value != seg.Value {
			return false
		}
	}
	return true
}
