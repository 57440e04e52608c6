package transport

import (
	"bytes"
	"time"

	"github.com/tport-io/tport-go/pkg/log"
)

// DefaultReadBlockSize is the minimum size of a read-buffer refill.
const DefaultReadBlockSize = 4096

// BufferedOption configures a BufferedTransport.
type BufferedOption func(*BufferedTransport)

// WithReadBlockSize sets the minimum refill size. Non-positive values keep
// DefaultReadBlockSize.
func WithReadBlockSize(n int) BufferedOption {
	return func(b *BufferedTransport) {
		if n > 0 {
			b.blockSize = n
		}
	}
}

// WithBufferLogger sets the protocol event logger and the connection ID
// used in its events.
func WithBufferLogger(l log.Logger, connID string) BufferedOption {
	return func(b *BufferedTransport) {
		b.logger = log.OrNoop(l)
		b.connID = connID
	}
}

// BufferedTransport wraps another Transport, adding read look-ahead and write
// coalescing. Open, Close and IsOpen are delegated unchanged.
//
// Pending writes are not flushed on Close; callers must Flush explicitly.
type BufferedTransport struct {
	inner Transport

	// wbuf holds bytes not yet handed to inner.
	wbuf []byte
	// rbuf holds bytes pulled from inner but not yet consumed. It is
	// replaced wholesale on refill, never appended to.
	rbuf      *bytes.Reader
	blockSize int

	logger log.Logger
	connID string
}

// NewBufferedTransport wraps inner, which the BufferedTransport then owns.
func NewBufferedTransport(inner Transport, opts ...BufferedOption) *BufferedTransport {
	b := &BufferedTransport{
		inner:     inner,
		rbuf:      bytes.NewReader(nil),
		blockSize: DefaultReadBlockSize,
		logger:    log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.connID == "" {
		if s, ok := inner.(interface{ ConnectionID() string }); ok {
			b.connID = s.ConnectionID()
		}
	}
	return b
}

// Inner returns the wrapped transport.
func (b *BufferedTransport) Inner() Transport {
	return b.inner
}

// ReadBlockSize returns the minimum refill size.
func (b *BufferedTransport) ReadBlockSize() int {
	return b.blockSize
}

// Pending returns the number of written bytes waiting for Flush.
func (b *BufferedTransport) Pending() int {
	return len(b.wbuf)
}

func (b *BufferedTransport) Open() error  { return b.inner.Open() }
func (b *BufferedTransport) Close() error { return b.inner.Close() }
func (b *BufferedTransport) IsOpen() bool { return b.inner.IsOpen() }

// Read serves up to sz bytes from the read buffer. Only when the buffer is
// exhausted is it replaced by one inner read of max(sz, block size) bytes.
func (b *BufferedTransport) Read(sz int) ([]byte, error) {
	if sz <= 0 {
		return []byte{}, nil
	}
	if b.rbuf.Len() == 0 {
		data, err := b.inner.Read(max(sz, b.blockSize))
		if err != nil {
			return nil, err
		}
		b.rbuf = bytes.NewReader(data)
	}

	out := make([]byte, min(sz, b.rbuf.Len()))
	n, _ := b.rbuf.Read(out)
	return out[:n], nil
}

// Write appends buf to the write buffer. No I/O happens until Flush.
func (b *BufferedTransport) Write(buf []byte) error {
	b.wbuf = append(b.wbuf, buf...)
	return nil
}

// Flush hands the write buffer to inner in a single Write, then calls
// inner.Flush.
//
// The write buffer is emptied before the inner calls are made. If either
// fails, the payload is gone: a later Flush does not resend it. Retrying is
// up to the layer above.
func (b *BufferedTransport) Flush() error {
	out := b.wbuf
	b.wbuf = nil

	if len(out) > 0 {
		if err := b.inner.Write(out); err != nil {
			b.logError("flush", err, len(out))
			return err
		}
		b.logger.Log(b.event(log.CategoryData, func(ev *log.Event) {
			ev.Data = log.NewDataEvent(out)
		}))
	}
	if err := b.inner.Flush(); err != nil {
		b.logError("flush", err, len(out))
		return err
	}
	return nil
}

// Buffer returns the read buffer for decoders that consume bytes directly
// instead of through Read. Reading from it advances the same cursor Read uses.
func (b *BufferedTransport) Buffer() *bytes.Reader {
	return b.rbuf
}

// Refill replaces the read buffer when a direct-buffer decoder ran short.
// partial holds the bytes it already consumed from the old buffer and reqLen
// the total it needs. When reqLen is below the block size, one opportunistic
// inner read of a full block is made first; the remaining shortfall is then
// read exactly with ReadAll. The returned buffer, positioned at its start,
// holds partial followed by everything read.
func (b *BufferedTransport) Refill(partial []byte, reqLen int) (*bytes.Reader, error) {
	buf := append([]byte(nil), partial...)

	if reqLen < b.blockSize {
		more, err := b.inner.Read(b.blockSize)
		if err != nil {
			return nil, err
		}
		buf = append(buf, more...)
	}

	if len(buf) < reqLen {
		rest, err := ReadAll(b.inner, reqLen-len(buf))
		if err != nil {
			return nil, err
		}
		buf = append(buf, rest...)
	}

	b.rbuf = bytes.NewReader(buf)
	return b.rbuf, nil
}

func (b *BufferedTransport) logError(op string, err error, lost int) {
	b.logger.Log(b.event(log.CategoryError, func(ev *log.Event) {
		ev.Error = &log.ErrorEventData{
			Layer:   log.LayerBuffer,
			Message: err.Error(),
			Kind:    KindOf(err).String(),
			Context: op,
		}
		if lost > 0 {
			ev.Error.Context = op + ": buffered payload dropped"
		}
	}))
}

func (b *BufferedTransport) event(cat log.Category, fill func(*log.Event)) log.Event {
	ev := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: b.connID,
		Direction:    log.DirectionOut,
		Layer:        log.LayerBuffer,
		Category:     cat,
	}
	if s, ok := b.inner.(interface{ Target() string }); ok {
		ev.Endpoint = s.Target()
	}
	fill(&ev)
	return ev
}
