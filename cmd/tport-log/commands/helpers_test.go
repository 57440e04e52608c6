package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tport-io/tport-go/pkg/log"
)

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.tlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is a short client session: connect, request, response,
// then the peer resets the connection.
func sessionEvents() []log.Event {
	const conn = "abc12345-6789-0123-4567-890abcdef012"
	const endpoint = "127.0.0.1:9090"
	return []log.Event{
		{
			Timestamp: baseTime, ConnectionID: conn, Direction: log.DirectionOut,
			Layer: log.LayerSocket, Category: log.CategoryState, Endpoint: endpoint,
			StateChange: &log.StateChangeEvent{OldState: "UNOPENED", NewState: "OPEN", Reason: "connected tcp4://127.0.0.1:9090"},
		},
		{
			Timestamp: baseTime.Add(10 * time.Millisecond), ConnectionID: conn, Direction: log.DirectionOut,
			Layer: log.LayerSocket, Category: log.CategoryData, Endpoint: endpoint,
			Data: log.NewDataEvent([]byte{0x80, 0x01, 0x00, 0x01}),
		},
		{
			Timestamp: baseTime.Add(11 * time.Millisecond), ConnectionID: conn, Direction: log.DirectionOut,
			Layer: log.LayerBuffer, Category: log.CategoryData, Endpoint: endpoint,
			Data: log.NewDataEvent([]byte{0x80, 0x01, 0x00, 0x01}),
		},
		{
			Timestamp: baseTime.Add(40 * time.Millisecond), ConnectionID: conn, Direction: log.DirectionIn,
			Layer: log.LayerSocket, Category: log.CategoryData, Endpoint: endpoint,
			Data: log.NewDataEvent([]byte("response-bytes")),
		},
		{
			Timestamp: baseTime.Add(2 * time.Second), ConnectionID: conn, Direction: log.DirectionIn,
			Layer: log.LayerSocket, Category: log.CategoryError, Endpoint: endpoint,
			Error: &log.ErrorEventData{Layer: log.LayerSocket, Kind: "END_OF_FILE", Message: "socket read 0 bytes (END_OF_FILE)", Context: "read"},
		},
	}
}
