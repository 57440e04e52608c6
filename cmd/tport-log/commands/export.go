package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tport-io/tport-go/pkg/log"
)

// RunExport exports the log file to the specified format. An empty output
// writes to stdout.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSONL rendering of an event, with enum names instead of
// their numeric codes.
type jsonEvent struct {
	Timestamp    string                `json:"timestamp"`
	ConnectionID string                `json:"connection_id"`
	Direction    string                `json:"direction"`
	Layer        string                `json:"layer"`
	Category     string                `json:"category"`
	Endpoint     string                `json:"endpoint,omitempty"`
	RemoteAddr   string                `json:"remote_addr,omitempty"`
	Data         *log.DataEvent        `json:"data,omitempty"`
	StateChange  *log.StateChangeEvent `json:"state_change,omitempty"`
	Error        *jsonError            `json:"error,omitempty"`
}

type jsonError struct {
	Layer   string `json:"layer"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

func toJSONEvent(e log.Event) jsonEvent {
	je := jsonEvent{
		Timestamp:    e.Timestamp.UTC().Format(timestampLayout),
		ConnectionID: e.ConnectionID,
		Direction:    e.Direction.String(),
		Layer:        e.Layer.String(),
		Category:     e.Category.String(),
		Endpoint:     e.Endpoint,
		RemoteAddr:   e.RemoteAddr,
		Data:         e.Data,
		StateChange:  e.StateChange,
	}
	if e.Error != nil {
		je.Error = &jsonError{
			Layer:   e.Error.Layer.String(),
			Kind:    e.Error.Kind,
			Message: e.Error.Message,
			Context: e.Error.Context,
		}
	}
	return je
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "connection_id", "direction", "layer", "category", "endpoint", "size", "state", "error_kind", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var size, state, kind, msg string
		switch {
		case event.Data != nil:
			size = strconv.Itoa(event.Data.Size)
		case event.StateChange != nil:
			state = event.StateChange.NewState
		case event.Error != nil:
			kind = event.Error.Kind
			msg = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format(timestampLayout),
			event.ConnectionID,
			event.Direction.String(),
			event.Layer.String(),
			event.Category.String(),
			event.Endpoint,
			size,
			state,
			kind,
			msg,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
