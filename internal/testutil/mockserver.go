// Package testutil provides testing utilities for VATScope tests
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// MockVATSIM is a fake status + data endpoint pair for client tests.
// The status document it serves points every v3 URL back at the
// mock's own data endpoint.
type MockVATSIM struct {
	server *httptest.Server

	mu sync.Mutex

	// Payloads
	data    *vatsim.Data
	v3Count int

	// Forced failures; 0 means serve normally
	statusCode int
	dataCode   int

	// Raw body overrides; empty means encode the JSON document
	statusBody string
	dataBody   string

	// Tracking
	statusRequests int
	dataRequests   int
	lastUserAgent  string
}

// NewMockVATSIM starts a fake serving the given snapshot.
func NewMockVATSIM(data *vatsim.Data) *MockVATSIM {
	m := &MockVATSIM{
		data:    data,
		v3Count: 2,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/status.json", m.handleStatus)
	mux.HandleFunc("/v3/data.json", m.handleData)
	m.server = httptest.NewServer(mux)
	return m
}

// Close shuts the mock down.
func (m *MockVATSIM) Close() {
	m.server.Close()
}

// StatusURL returns the mock's status endpoint.
func (m *MockVATSIM) StatusURL() string {
	return m.server.URL + "/status.json"
}

// DataURL returns the mock's v3 data endpoint.
func (m *MockVATSIM) DataURL() string {
	return m.server.URL + "/v3/data.json"
}

// SetV3Count controls how many v3 URLs the status document lists.
// Zero produces an empty list.
func (m *MockVATSIM) SetV3Count(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v3Count = n
}

// FailStatus forces the status endpoint to answer with an HTTP error.
func (m *MockVATSIM) FailStatus(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCode = code
}

// FailData forces the data endpoint to answer with an HTTP error.
func (m *MockVATSIM) FailData(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataCode = code
}

// SetStatusBody overrides the status payload with raw bytes.
func (m *MockVATSIM) SetStatusBody(body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusBody = body
}

// SetDataBody overrides the data payload with raw bytes.
func (m *MockVATSIM) SetDataBody(body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataBody = body
}

// StatusRequests returns how many times the status endpoint was hit.
func (m *MockVATSIM) StatusRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusRequests
}

// DataRequests returns how many times the data endpoint was hit.
func (m *MockVATSIM) DataRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dataRequests
}

// LastUserAgent returns the User-Agent header seen most recently.
func (m *MockVATSIM) LastUserAgent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastUserAgent
}

func (m *MockVATSIM) handleStatus(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.statusRequests++
	m.lastUserAgent = r.Header.Get("User-Agent")
	code := m.statusCode
	body := m.statusBody
	count := m.v3Count
	m.mu.Unlock()

	if code != 0 {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if body != "" {
		_, _ = w.Write([]byte(body))
		return
	}

	urls := make([]string, count)
	for i := range urls {
		urls[i] = m.DataURL()
	}
	status := vatsim.Status{
		Data: vatsim.StatusData{V3: urls},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

func (m *MockVATSIM) handleData(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.dataRequests++
	m.lastUserAgent = r.Header.Get("User-Agent")
	code := m.dataCode
	body := m.dataBody
	data := m.data
	m.mu.Unlock()

	if code != 0 {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if body != "" {
		_, _ = w.Write([]byte(body))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
