package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// TestHTTPServer records every request it receives and answers each
// registered path with a canned JSON response.
type TestHTTPServer struct {
	*http.ServeMux

	lock     sync.Mutex
	requests []RecordedRequest
}

type RecordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

func NewTestHTTPServer() *TestHTTPServer {
	return &TestHTTPServer{ServeMux: http.NewServeMux()}
}

// RespondJSON answers requests to path with status and body encoded as JSON.
func (s *TestHTTPServer) RespondJSON(path string, status int, body interface{}) {
	s.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		s.record(r)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
}

func (s *TestHTTPServer) Requests() []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	requests := make([]RecordedRequest, len(s.requests))
	copy(requests, s.requests)
	return requests
}

func (s *TestHTTPServer) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.requests = append(s.requests, RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
}

// Start returns the base URL the server is listening on.
func (s *TestHTTPServer) Start(t *testing.T) string {
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot start test server: %v", err)
	}

	srvAddr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := http.Server{
		Addr:    srvAddr,
		Handler: s,
	}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("cannot start test server: %v", err)
		}
	}()

	waitForServer(t, srvAddr)
	return "http://" + srvAddr
}

func waitForServer(t *testing.T, addr string) {
	backoff := 50 * time.Millisecond

	for i := 0; i < 10; i++ {
		conn, err := net.DialTimeout("tcp", addr, 1*time.Second)
		if err != nil {
			time.Sleep(backoff)
			continue
		}
		err = conn.Close()
		if err != nil {
			t.Fatal(err)
		}
		return
	}

	t.Fatalf("server on %s not up after 10 attempts", addr)
}
