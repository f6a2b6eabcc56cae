package mount

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/outlet-dev/outlet/pkg/viewset"
)

// recordingRender writes the active index and params for assertions.
func recordingRender(active *int, params *map[string]string) RenderFunc {
	return func(w http.ResponseWriter, r *http.Request, a int, p map[string]string) {
		*active = a
		*params = p
		if a == viewset.NoneActive {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, "view %d", a)
	}
}

func TestHandlerResolvesActiveView(t *testing.T) {
	set := viewset.New("/", []string{"/", "about", "users/:id"})

	var active int
	var params map[string]string
	srv := httptest.NewServer(Handler(set, recordingRender(&active, &params)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users/42")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if active != 2 {
		t.Errorf("active = %d, want 2", active)
	}
	if params["id"] != "42" {
		t.Errorf("params = %v, want map[id:42]", params)
	}
}

func TestHandlerPassesQueryToResolver(t *testing.T) {
	set := viewset.New("/", []string{"users/:id"})

	var active int
	var params map[string]string
	srv := httptest.NewServer(Handler(set, recordingRender(&active, &params)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users/42?tab=posts")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if active != 0 {
		t.Errorf("active = %d, want 0", active)
	}
	if params["id"] != "42" {
		t.Errorf("params = %v, want map[id:42]", params)
	}
}

func TestHandlerNotFound(t *testing.T) {
	set := viewset.New("/", []string{"about"})

	var active int
	var params map[string]string
	srv := httptest.NewServer(Handler(set, recordingRender(&active, &params)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/zzz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if active != viewset.NoneActive {
		t.Errorf("active = %d, want %d", active, viewset.NoneActive)
	}
	if params != nil {
		t.Errorf("params = %v, want nil", params)
	}
}

func TestRoutesServesViewsAndMetrics(t *testing.T) {
	set := viewset.New("/", []string{"/", "about"})

	var active int
	var params map[string]string
	srv := httptest.NewServer(Routes(set, recordingRender(&active, &params)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/about")
	if err != nil {
		t.Fatalf("GET /about: %v", err)
	}
	resp.Body.Close()
	if active != 1 {
		t.Errorf("active = %d, want 1", active)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("metrics status = %d, want 200", resp.StatusCode)
	}
}
