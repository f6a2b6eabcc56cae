package routepath

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{"empty path aliases base", "", "/", "/"},
		{"root path aliases base", "/", "/", "/"},
		{"empty path aliases nested base", "", "/app", "/app"},
		{"root path aliases nested base", "/", "/app", "/app"},
		{"relative under root base", "users", "/", "/users"},
		{"relative with param under root base", "users/:id", "/", "/users/:id"},
		{"relative under nested base", "users", "/app", "/app/users"},
		{"relative with param under nested base", "users/:id", "/app", "/app/users/:id"},
		{"multi-segment relative", "users/:id/posts", "/admin", "/admin/users/:id/posts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.path, tt.base); got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.path, tt.base, got, tt.want)
			}
		})
	}
}

func TestMatchesRootIsUniversal(t *testing.T) {
	locations := []string{"/", "", "/users", "/users/42", "/a/b/c?x=1", "/zzz"}
	for _, loc := range locations {
		if !Matches("/", loc) {
			t.Errorf("Matches(\"/\", %q) = false, want true", loc)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		template string
		location string
		want     bool
	}{
		{"exact literal", "/users", "/users", true},
		{"literal mismatch", "/users", "/projects", false},
		{"literal prefix of longer location", "/users", "/users/42", true},
		{"literal prefix of deep location", "/users", "/users/42/posts/7", true},
		{"template longer than location", "/users/:id", "/users", false},
		{"param captures any segment", "/users/:id", "/users/42", true},
		{"param with trailing segments", "/users/:id", "/users/42/posts", true},
		{"two params", "/users/:uid/posts/:pid", "/users/1/posts/2", true},
		{"literal after param mismatch", "/users/:id/posts", "/users/42/comments", false},
		{"query string ignored", "/users/:id", "/users/42?tab=posts", true},
		{"query string ignored on mismatch", "/users", "/projects?from=/users", false},
		{"duplicate slashes in location collapse", "/users/:id", "/users//42", true},
		{"trailing slash in location ignored", "/users", "/users/", true},
		{"empty param segment fails via length", "/users/:id", "/users//", false},
		{"empty location vs non-root template", "/users", "", false},
		{"root location vs non-root template", "/users", "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.template, tt.location); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.template, tt.location, got, tt.want)
			}
		})
	}
}

func TestResolveActiveLastMatchWins(t *testing.T) {
	// Both templates match; declaration order decides, not specificity.
	got := ResolveActive([]string{"/a", "/a"}, "/a", -1)
	if got != 1 {
		t.Errorf("ResolveActive = %d, want 1 (last match wins)", got)
	}

	// A later prefix template overrides an earlier deeper one.
	got = ResolveActive([]string{"/users/:id", "/users"}, "/users/42", -1)
	if got != 1 {
		t.Errorf("ResolveActive = %d, want 1", got)
	}
}

func TestResolveActiveRootFallback(t *testing.T) {
	tests := []struct {
		name         string
		templates    []string
		location     string
		defaultIndex int
		want         int
	}{
		{"non-root after root still wins", []string{"/", "/a"}, "/a", -1, 1},
		{"root as sole match acts as fallback", []string{"/a", "/"}, "/zzz", -1, 1},
		{"root does not steal from earlier match", []string{"/a", "/"}, "/a", -1, 0},
		{"root first with no other match", []string{"/", "/a"}, "/zzz", -1, 0},
		{"nothing matches", []string{"/a", "/b"}, "/zzz", -1, -1},
		{"empty template list", nil, "/a", -1, -1},
		{"custom default index", []string{"/a"}, "/zzz", 99, 99},
		{"later match overrides earlier", []string{"/a", "/b", "/a"}, "/a", -1, 2},
		{"param route wins over root", []string{"/", "/users/:id"}, "/users/42", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActive(tt.templates, tt.location, tt.defaultIndex)
			if got != tt.want {
				t.Errorf("ResolveActive(%v, %q, %d) = %d, want %d",
					tt.templates, tt.location, tt.defaultIndex, got, tt.want)
			}
		})
	}
}

func TestExtractParams(t *testing.T) {
	tests := []struct {
		name     string
		template string
		location string
		want     map[string]string
	}{
		{"single param", "/users/:id", "/users/42", map[string]string{"id": "42"}},
		{"two params", "/users/:uid/posts/:pid", "/users/1/posts/2",
			map[string]string{"uid": "1", "pid": "2"}},
		{"no params yields nil", "/users", "/users/42", nil},
		{"root template yields nil", "/", "/users", nil},
		{"raw value not decoded", "/files/:name", "/files/a%2Fb",
			map[string]string{"name": "a%2Fb"}},
		{"query not stripped here", "/users/:id", "/users/42?x=1",
			map[string]string{"id": "42?x=1"}},
		{"location shorter than template leaves key unset", "/users/:id", "/users",
			map[string]string{}},
		{"duplicate names overwrite", "/:x/:x", "/a/b", map[string]string{"x": "b"}},
		{"empty captured value preserved", "/users/:id/posts", "/users//posts",
			map[string]string{"id": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractParams(tt.template, tt.location)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ExtractParams(%q, %q) = %v, want nil", tt.template, tt.location, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractParams(%q, %q) = nil, want %v", tt.template, tt.location, tt.want)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractParams(%q, %q) = %v, want %v", tt.template, tt.location, got, tt.want)
			}
		})
	}
}

func TestExtractParamsAbsentVersusEmpty(t *testing.T) {
	// A template with zero dynamic segments returns nil, not an empty map;
	// callers merging params with other context rely on the distinction.
	if got := ExtractParams("/users", "/users/42"); got != nil {
		t.Errorf("ExtractParams on static template = %v, want nil", got)
	}

	// A template whose only param is out of range still returns a map.
	got := ExtractParams("/users/:id", "/users")
	if got == nil {
		t.Fatal("ExtractParams with out-of-range param = nil, want empty map")
	}
	if len(got) != 0 {
		t.Errorf("ExtractParams with out-of-range param = %v, want empty map", got)
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		location string
		want     string
	}{
		{"positional carry-over", "/posts/:id", "/users/42", "/posts/42"},
		{"literal only", "/about", "/users/42", "/about"},
		{"root template", "/", "/users/42", "/"},
		{"query stripped from location", "/posts/:id", "/users/42?tab=x", "/posts/42"},
		{"mixed literal and param", "/users/:id/edit", "/users/42/view", "/users/42/edit"},
		{"two params", "/a/:x/:y", "/a/1/2", "/a/1/2"},
		{"missing source segment substitutes empty", "/users/:id", "/", "/users/"},
		{"duplicate location slashes collapse", "/posts/:id", "/users//42", "/posts/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.template, tt.location); got != tt.want {
				t.Errorf("Interpolate(%q, %q) = %q, want %q", tt.template, tt.location, got, tt.want)
			}
		})
	}
}

func TestSplitPathAndQuery(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		wantPath  string
		wantQuery string
	}{
		{"path with query", "/a/b?x=1", "/a/b", "x=1"},
		{"path without query", "/a/b", "/a/b", ""},
		{"empty query after separator", "/a/b?", "/a/b", ""},
		{"only first separator splits", "/a?x=1?y=2", "/a", "x=1?y=2"},
		{"empty location", "", "", ""},
		{"query only", "?x=1", "", "x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, query := SplitPathAndQuery(tt.location)
			if path != tt.wantPath || query != tt.wantQuery {
				t.Errorf("SplitPathAndQuery(%q) = (%q, %q), want (%q, %q)",
					tt.location, path, query, tt.wantPath, tt.wantQuery)
			}
		})
	}
}
