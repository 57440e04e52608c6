// Package log provides structured protocol logging for tport transports.
//
// This package defines the Logger interface and Event types for capturing
// transport-level events (bytes in and out, state changes, errors). It is
// separate from operational logging (zap, slog): protocol capture provides a
// complete machine-readable trace of what crossed the socket.
//
// # Basic Usage
//
// Transports accept a Logger through their options:
//
//	// For development: log to console
//	sock := transport.NewSocket(transport.WithProtocolLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/tport/client.tlog")
//	sock := transport.NewSocket(transport.WithProtocolLogger(fl))
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(log.NewZapAdapter(zapLogger), fl)
//
// # Event Types
//
// Events are captured at two layers:
//   - Socket: raw bytes received and sent, connect/close transitions
//   - Buffer: coalesced writes handed to the inner transport on flush
//
// Errors at either layer have a dedicated event payload.
//
// # File Format
//
// Log files use CBOR encoding with .tlog extension. The tport-log CLI tool
// provides viewing, filtering, and export capabilities.
package log
