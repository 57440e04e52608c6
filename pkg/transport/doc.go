// Package transport provides the byte transports of the tport RPC stack.
//
// A transport moves exact byte counts between a peer and a protocol
// encoder/decoder. The encoder only ever sees the Transport interface:
//
//	┌────────────────────────────────┐
//	│   Protocol encoder/decoder     │
//	├────────────────────────────────┤
//	│   BufferedTransport            │  read look-ahead, write coalescing
//	├────────────────────────────────┤
//	│   Socket                       │  one TCP or Unix-domain connection
//	└────────────────────────────────┘
//
// # Connecting
//
// A Socket resolves its target into an ordered list of candidates (a single
// Unix-domain path, or every address the resolver returns for host:port) and
// connects to the first one that accepts. Only when every candidate fails does
// Open return an error, of kind KindNotOpen.
//
// A Server binds the passive side of the same resolution (an empty host means
// every wildcard address) and returns each accepted connection as an open
// Socket.
//
// # Errors
//
// Every failure is an *Error carrying a Kind and a message naming the target
// or operation. A zero-byte receive, a zero-byte send and a short ReadAll all
// surface as KindEndOfFile. Use errors.Is with the package sentinels:
//
//	if errors.Is(err, transport.ErrEndOfFile) { ... }
//
// # Flush semantics
//
// BufferedTransport.Flush empties its write buffer before handing the bytes
// to the inner transport. A failed Flush therefore loses the payload; a second
// Flush sends nothing. Higher layers that want retries must keep their own
// copy of the message.
//
// # Concurrency
//
// All I/O is blocking and no transport is safe for concurrent use. Each
// instance represents exactly one physical connection.
package transport
