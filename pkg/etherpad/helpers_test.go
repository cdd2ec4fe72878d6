package etherpad

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake server saw for one call.
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Args        map[string]any
}

// fakeServer answers every request with the body returned by respond.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T, respond func(op string, args map[string]any) string) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var args map[string]any
		if len(body) > 0 {
			assert.NoError(t, json.Unmarshal(body, &args))
		}

		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Args:        args,
		})
		fs.mu.Unlock()

		op := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, respond(op, args))
	}))
	t.Cleanup(fs.Close)

	return fs
}

// okServer answers every call with code 0 and the given data.
func okServer(t *testing.T, data string) *fakeServer {
	return newFakeServer(t, func(string, map[string]any) string {
		if data == "" {
			return `{"code":0,"message":"ok","data":null}`
		}
		return `{"code":0,"message":"ok","data":` + data + `}`
	})
}

func (fs *fakeServer) client(t *testing.T) *Client {
	t.Helper()

	c, err := New("abc", WithBaseURL(fs.URL+"/api"))
	require.NoError(t, err)
	return c
}

func (fs *fakeServer) last(t *testing.T) recordedRequest {
	t.Helper()

	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests, "no request reached the server")
	return fs.requests[len(fs.requests)-1]
}

func (fs *fakeServer) count() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.requests)
}

// safeBuffer is a bytes.Buffer usable as a logger sink.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
