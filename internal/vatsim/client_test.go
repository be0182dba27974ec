package vatsim_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vatscope/vatscope/internal/logging"
	"github.com/vatscope/vatscope/internal/testutil"
	"github.com/vatscope/vatscope/internal/vatsim"
)

// newClientFor points a client with a short timeout at the mock.
func newClientFor(mock *testutil.MockVATSIM) *vatsim.Client {
	return vatsim.NewClient(mock.StatusURL(), 2*time.Second)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func unsortedData() *vatsim.Data {
	return testutil.DataWith(
		[]vatsim.Pilot{
			testutil.PilotWithCallsign("ZULU1"),
			testutil.PilotWithCallsign("ALPHA1"),
			testutil.PilotWithCallsign("MIKE1"),
		},
		[]vatsim.Controller{
			testutil.ControllerWithCallsign("LFPG_GND"),
			testutil.ControllerWithCallsign("EGLL_TWR"),
		},
	)
}

// ============================================================================
// Happy path
// ============================================================================

func TestClient_Fetch_SortsBothListsByCallsign(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	data, err := newClientFor(mock).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	wantPilots := []string{"ALPHA1", "MIKE1", "ZULU1"}
	for i, want := range wantPilots {
		if data.Pilots[i].Callsign != want {
			t.Errorf("pilot %d = %q, want %q", i, data.Pilots[i].Callsign, want)
		}
	}

	wantControllers := []string{"EGLL_TWR", "LFPG_GND"}
	for i, want := range wantControllers {
		if data.Controllers[i].Callsign != want {
			t.Errorf("controller %d = %q, want %q", i, data.Controllers[i].Callsign, want)
		}
	}
}

func TestClient_Fetch_SendsUserAgent(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	if _, err := newClientFor(mock).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := "github.com/vatscope/vatscope"
	if got := mock.LastUserAgent(); got != want {
		t.Errorf("User-Agent = %q, want %q", got, want)
	}
}

func TestClient_Fetch_RecordsChosenDataURL(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	client := newClientFor(mock)
	if got := client.DataURL(); got != "" {
		t.Errorf("DataURL before fetch = %q, want empty", got)
	}

	if _, err := client.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := client.DataURL(); got != mock.DataURL() {
		t.Errorf("DataURL = %q, want %q", got, mock.DataURL())
	}
}

func TestClient_Fetch_HitsEachEndpointOnce(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	if _, err := newClientFor(mock).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if got := mock.StatusRequests(); got != 1 {
		t.Errorf("status requests = %d, want 1", got)
	}
	if got := mock.DataRequests(); got != 1 {
		t.Errorf("data requests = %d, want 1", got)
	}
}

func TestClient_FetchStatus(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	status, err := newClientFor(mock).FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus: %v", err)
	}
	if len(status.Data.V3) != 2 {
		t.Errorf("v3 URL count = %d, want 2", len(status.Data.V3))
	}
}

// ============================================================================
// Failure paths
// ============================================================================

func TestClient_Fetch_StatusEndpointError(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()
	mock.FailStatus(500)

	_, err := newClientFor(mock).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for status 500")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q should mention the status code", err)
	}
}

func TestClient_Fetch_DataEndpointError(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()
	mock.FailData(503)

	_, err := newClientFor(mock).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for status 503")
	}
}

func TestClient_Fetch_NoV3URLs(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()
	mock.SetV3Count(0)

	_, err := newClientFor(mock).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for an empty v3 list")
	}
	if !strings.Contains(err.Error(), "no v3 data URLs") {
		t.Errorf("error %q should mention the missing URLs", err)
	}
}

func TestClient_Fetch_MalformedStatusJSON(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()
	mock.SetStatusBody("{this is not json")

	_, err := newClientFor(mock).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("error %q should mention decoding", err)
	}
}

func TestClient_Fetch_MalformedDataJSON(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()
	mock.SetDataBody("]]")

	_, err := newClientFor(mock).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newClientFor(mock).Fetch(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

// ============================================================================
// Debug logging
// ============================================================================

func TestClient_Fetch_LogsWhenVerbose(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "client.log")
	logging.Configure(logFile, true)
	defer logging.Configure("", false)

	mock := testutil.NewMockVATSIM(unsortedData())
	defer mock.Close()

	if _, err := newClientFor(mock).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	content := readFile(t, logFile)
	if !strings.Contains(content, "[DEBUG]") {
		t.Error("expected debug lines in the log file")
	}
	if !strings.Contains(content, "snapshot loaded: 3 pilots, 2 controllers") {
		t.Errorf("log missing the snapshot summary, got:\n%s", content)
	}
}
