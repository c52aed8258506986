package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
)

// fakeAPI serves canned JSON per path and records the queries it received.
type fakeAPI struct {
	server *httptest.Server

	mu      sync.Mutex
	queries map[string]url.Values
	calls   atomic.Int32
}

func newFakeAPI(t *testing.T, routes map[string]string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{queries: map[string]url.Values{}}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/1.0").Subrouter()
	for path, payload := range routes {
		api.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			f.calls.Add(1)
			f.mu.Lock()
			f.queries[r.URL.Path] = r.URL.Query()
			f.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(payload))
		}).Methods(http.MethodGet)
	}
	api.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		http.Error(w, `{"error": "database unavailable"}`, http.StatusInternalServerError)
	}).Methods(http.MethodGet)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) baseURL() string {
	return f.server.URL + "/api/1.0/"
}

func (f *fakeAPI) query(path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries["/api/1.0/"+path]
}

// countingTransport counts round trips.
type countingTransport struct {
	calls atomic.Int32
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return c.next.RoundTrip(req)
}
