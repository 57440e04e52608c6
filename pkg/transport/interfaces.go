package transport

import (
	"context"
	"io"
	"net"
	"time"
)

// Transport moves bytes between a peer and a protocol encoder/decoder.
// Implemented by Socket and BufferedTransport.
//
// Transports are not safe for concurrent use; callers must serialize all
// calls on a given instance.
type Transport interface {
	// Open establishes connectivity. It fails with KindNotOpen, naming the
	// target, when no candidate address is reachable.
	Open() error

	// Close releases the connection. Repeated calls are no-ops.
	Close() error

	// IsOpen reports whether the transport holds a live connection.
	IsOpen() bool

	// Read returns between 1 and sz bytes. A zero-byte result is never
	// returned as success; it surfaces as KindEndOfFile.
	Read(sz int) ([]byte, error)

	// Write queues or sends buf. Delivery is only guaranteed after Flush.
	Write(buf []byte) error

	// Flush forces buffered bytes to the peer.
	Flush() error
}

// Conn is the socket handle owned by a Socket. net.Conn satisfies it.
type Conn interface {
	io.ReadWriteCloser

	// SetDeadline bounds subsequent blocking reads and writes.
	SetDeadline(t time.Time) error
}

// Dialer connects to a single candidate address. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Resolver queries system name resolution. *net.Resolver satisfies it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = (*Socket)(nil)
	_ Transport = (*BufferedTransport)(nil)
	_ Conn      = (net.Conn)(nil)
	_ Dialer    = (*net.Dialer)(nil)
	_ Resolver  = (*net.Resolver)(nil)
)
