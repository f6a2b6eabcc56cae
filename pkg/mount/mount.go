// Package mount serves a view set over HTTP.
//
// The handler resolves every request path against the set and hands the
// active index and extracted params to a caller-supplied render func. The
// chi router returned by Routes adds the conventional mount shape: a
// catch-all for views and a Prometheus metrics endpoint.
package mount

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/outlet-dev/outlet/pkg/viewset"
)

// RenderFunc renders the sibling at the active index. When nothing
// matched, active is viewset.NoneActive and params is nil; the render
// func owns the not-found response.
type RenderFunc func(w http.ResponseWriter, r *http.Request, active int, params map[string]string)

// handler resolves request paths against a view set.
type handler struct {
	set    *viewset.Set
	render RenderFunc
}

// Handler returns an http.Handler that resolves the request location and
// invokes render. The location passed to the resolver is the request path
// plus the raw query, matching what a navigation provider would hold.
func Handler(set *viewset.Set, render RenderFunc) http.Handler {
	return &handler{set: set, render: render}
}

// ServeHTTP implements http.Handler.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Path
	if r.URL.RawQuery != "" {
		location += "?" + r.URL.RawQuery
	}

	active := h.set.Resolve(location, viewset.NoneActive)
	var params map[string]string
	if active != viewset.NoneActive {
		// Params splits the location raw, so the query must not ride
		// along or the last captured value absorbs it.
		params = h.set.Params(active, r.URL.Path)
	}

	h.render(w, r, active, params)
}

// Routes returns a chi router serving the view set under its basepath:
// a /metrics endpoint for Prometheus scrapes and a catch-all that feeds
// everything else through the resolver.
func Routes(set *viewset.Set, render RenderFunc) chi.Router {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", Handler(set, render))
	return r
}
