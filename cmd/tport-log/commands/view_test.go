package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tport-io/tport-go/pkg/log"
)

func TestFormatDataEvent(t *testing.T) {
	event := sessionEvents()[1]

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.133456Z",
		"[conn:abc12345]",
		"OUT SOCKET Data",
		"Endpoint: 127.0.0.1:9090",
		"Size: 4 bytes",
		"Data: 80010001",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "truncated") {
		t.Errorf("unexpected truncation marker:\n%s", output)
	}
}

func TestFormatTruncatedDataEvent(t *testing.T) {
	event := sessionEvents()[1]
	event.Data = log.NewDataEvent(make([]byte, log.MaxLogDataSize+1))

	var buf bytes.Buffer
	formatEvent(&buf, event)

	if !strings.Contains(buf.String(), "(truncated)") {
		t.Errorf("expected truncation marker, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "Size: 4097 bytes") {
		t.Errorf("expected full size, got: %s", buf.String())
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sessionEvents()[0])
	output := buf.String()

	if !strings.Contains(output, "State") {
		t.Errorf("expected State label, got: %s", output)
	}
	if !strings.Contains(output, "UNOPENED -> OPEN") {
		t.Errorf("expected state transition, got: %s", output)
	}
	if !strings.Contains(output, "Reason: connected tcp4://127.0.0.1:9090") {
		t.Errorf("expected reason, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sessionEvents()[4])
	output := buf.String()

	for _, want := range []string{"IN  SOCKET Error", "Kind: END_OF_FILE", "Message: socket read 0 bytes", "Context: read"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunViewWithFilter(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	layer := log.LayerSocket
	dir := log.DirectionOut
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Layer: &layer, Direction: &dir}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if got := strings.Count(output, "[conn:"); got != 2 {
		t.Errorf("expected 2 events, got %d:\n%s", got, output)
	}
	if strings.Contains(output, "BUFFER") {
		t.Errorf("buffer events should be filtered out:\n%s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/test.tlog", ViewFilter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := ParseLayerFlag("SOCKET"); err != nil || l != log.LayerSocket {
		t.Errorf("ParseLayerFlag(SOCKET) = %v, %v", l, err)
	}
	if l, err := ParseLayerFlag("buffer"); err != nil || l != log.LayerBuffer {
		t.Errorf("ParseLayerFlag(buffer) = %v, %v", l, err)
	}
	if _, err := ParseLayerFlag("wire"); err == nil {
		t.Error("expected error for unknown layer")
	}

	if d, err := ParseDirectionFlag("In"); err != nil || d != log.DirectionIn {
		t.Errorf("ParseDirectionFlag(In) = %v, %v", d, err)
	}
	if _, err := ParseDirectionFlag("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}

	tests := map[string]log.Category{"data": log.CategoryData, "STATE": log.CategoryState, "error": log.CategoryError}
	for in, want := range tests {
		got, err := ParseCategoryFlag(in)
		if err != nil || got != want {
			t.Errorf("ParseCategoryFlag(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCategoryFlag("message"); err == nil {
		t.Error("expected error for unknown category")
	}
}
