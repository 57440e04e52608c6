package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tport-io/tport-go/pkg/log"
)

func TestCollectStats(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", stats.TotalEvents)
	}
	if stats.EventsByLayer[log.LayerSocket] != 4 || stats.EventsByLayer[log.LayerBuffer] != 1 {
		t.Errorf("unexpected layer counts: %v", stats.EventsByLayer)
	}
	if stats.EventsByCategory[log.CategoryData] != 3 {
		t.Errorf("data events = %d, want 3", stats.EventsByCategory[log.CategoryData])
	}
	// The buffered flush is not double counted.
	if stats.BytesOut != 4 {
		t.Errorf("BytesOut = %d, want 4", stats.BytesOut)
	}
	if stats.BytesIn != len("response-bytes") {
		t.Errorf("BytesIn = %d, want %d", stats.BytesIn, len("response-bytes"))
	}
	if stats.Errors() != 1 || stats.ErrorsByKind["END_OF_FILE"] != 1 {
		t.Errorf("unexpected errors: %v", stats.ErrorsByKind)
	}
	if len(stats.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(stats.Connections))
	}
	for _, c := range stats.Connections {
		if c.Endpoint != "127.0.0.1:9090" || c.Events != 5 || c.Errors != 1 {
			t.Errorf("unexpected connection stats: %+v", c)
		}
	}
	if !stats.TimeRange.Start.Equal(baseTime) {
		t.Errorf("TimeRange.Start = %v, want %v", stats.TimeRange.Start, baseTime)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Total Events: 5",
		"Bytes Out:    4",
		"SOCKET:",
		"BUFFER:",
		"Connections: 1",
		"[abc12345] 5 events",
		"Endpoint: 127.0.0.1:9090",
		"Errors: 1",
		"END_OF_FILE:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyLog(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
