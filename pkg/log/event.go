package log

import (
	"time"
)

// Event represents a protocol log event captured at any transport layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates byte flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Endpoint is the connection target (unix path or host:port).
	Endpoint string `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the resolved peer address, once connected.
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Data        *DataEvent        `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates the direction of byte flow.
type Direction uint8

const (
	// DirectionIn indicates bytes received from the peer.
	DirectionIn Direction = 0
	// DirectionOut indicates bytes sent to the peer.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which transport captured the event.
type Layer uint8

const (
	// LayerSocket is the raw socket transport.
	LayerSocket Layer = 0
	// LayerBuffer is the buffered transport wrapping another transport.
	LayerBuffer Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerSocket:
		return "SOCKET"
	case LayerBuffer:
		return "BUFFER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryData indicates bytes moved to or from the peer.
	CategoryData Category = 0
	// CategoryState indicates a connection state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryData:
		return "DATA"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// DataEvent captures bytes moved by a single read, write or flush.
type DataEvent struct {
	// Size is the number of bytes moved.
	Size int `cbor:"1,keyasint"`

	// Bytes is the payload (may be truncated for large transfers).
	Bytes []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Bytes was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MaxLogDataSize is the maximum payload size included in a DataEvent.
// Larger transfers are truncated to avoid excessive memory usage.
const MaxLogDataSize = 4096

// NewDataEvent builds a DataEvent for data, truncating the captured bytes
// to MaxLogDataSize. The bytes are copied.
func NewDataEvent(data []byte) *DataEvent {
	captured := data
	truncated := false
	if len(captured) > MaxLogDataSize {
		captured = captured[:MaxLogDataSize]
		truncated = true
	}
	return &DataEvent{
		Size:      len(data),
		Bytes:     append([]byte(nil), captured...),
		Truncated: truncated,
	}
}

// StateChangeEvent captures connection lifecycle events.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Kind is the transport error kind name (if applicable).
	Kind string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
