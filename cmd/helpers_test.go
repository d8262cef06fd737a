package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// newVerbRecorder starts a server that stores the request method in verb
func newVerbRecorder(t *testing.T, verb *string) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*verb = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true}`))
	}))
	t.Cleanup(server.Close)

	return server.URL
}
