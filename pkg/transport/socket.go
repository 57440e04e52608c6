package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tport-io/tport-go/pkg/log"
)

// Socket defaults.
const (
	DefaultHost = "localhost"
	DefaultPort = 9090
)

// Socket states, as reported in protocol log state events.
const (
	StateUnopened = "UNOPENED"
	StateOpen     = "OPEN"
	StateClosed   = "CLOSED"
)

// SocketOption configures a Socket.
type SocketOption func(*Socket)

// WithHost sets the host to connect to.
func WithHost(host string) SocketOption {
	return func(s *Socket) { s.host = host }
}

// WithPort sets the TCP port to connect to.
func WithPort(port int) SocketOption {
	return func(s *Socket) { s.port = port }
}

// WithUnixPath makes the Socket connect to a Unix-domain stream socket at
// path. Host and port are then ignored.
func WithUnixPath(path string) SocketOption {
	return func(s *Socket) { s.unixPath = path }
}

// WithTimeout bounds each connect attempt and each blocking read or write.
// Zero blocks indefinitely.
func WithTimeout(d time.Duration) SocketOption {
	return func(s *Socket) { s.timeout = d }
}

// WithDialer replaces the dialer used to connect candidates.
func WithDialer(d Dialer) SocketOption {
	return func(s *Socket) { s.dialer = d }
}

// WithResolver replaces the name resolver used for host lookups.
func WithResolver(r Resolver) SocketOption {
	return func(s *Socket) { s.resolver = r }
}

// WithProtocolLogger sets the protocol event logger.
func WithProtocolLogger(l log.Logger) SocketOption {
	return func(s *Socket) { s.logger = log.OrNoop(l) }
}

// WithRecvErrorPolicy replaces DefaultRecvErrorPolicy.
func WithRecvErrorPolicy(p RecvErrorPolicy) SocketOption {
	return func(s *Socket) { s.recvPolicy = p }
}

// WithConnectionID sets the ID used in protocol log events. A random UUID is
// used otherwise.
func WithConnectionID(id string) SocketOption {
	return func(s *Socket) { s.connID = id }
}

// Socket is a Transport over one physical stream socket (TCP or Unix-domain).
// It has no internal buffering; wrap it in a BufferedTransport for that.
//
// The Socket exclusively owns its handle. The handle is nil before Open and
// after Close, and non-nil only while open.
type Socket struct {
	host     string
	port     int
	unixPath string
	timeout  time.Duration

	handle     Conn
	remoteAddr string
	opened     bool

	dialer     Dialer
	resolver   Resolver
	ifaddrs    InterfaceAddrsFunc
	recvPolicy RecvErrorPolicy
	goos       string

	logger log.Logger
	connID string
}

// NewSocket creates an unopened Socket targeting localhost:9090 unless
// configured otherwise.
func NewSocket(opts ...SocketOption) *Socket {
	s := &Socket{
		host:       DefaultHost,
		port:       DefaultPort,
		dialer:     &net.Dialer{},
		resolver:   net.DefaultResolver,
		ifaddrs:    net.InterfaceAddrs,
		recvPolicy: DefaultRecvErrorPolicy,
		goos:       currentGOOS(),
		logger:     log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.connID == "" {
		s.connID = uuid.NewString()
	}
	return s
}

// Target returns the Unix path, or host:port, the Socket connects to.
func (s *Socket) Target() string {
	if s.unixPath != "" {
		return s.unixPath
	}
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// ConnectionID returns the ID used in protocol log events.
func (s *Socket) ConnectionID() string {
	return s.connID
}

// Timeout returns the configured timeout; zero means none.
func (s *Socket) Timeout() time.Duration {
	return s.timeout
}

// SetTimeout changes the timeout. It applies to the next connect attempt and
// to every later read or write on the live handle.
func (s *Socket) SetTimeout(d time.Duration) error {
	s.timeout = d
	if s.handle != nil && d <= 0 {
		if err := s.handle.SetDeadline(time.Time{}); err != nil {
			return WrapError(KindUnknown, "failed to clear socket deadline", err)
		}
	}
	return nil
}

// SetHandle adopts an already-connected socket, for example one accepted by
// a listener. The Socket takes ownership of c.
func (s *Socket) SetHandle(c Conn) {
	s.handle = c
	s.remoteAddr = remoteAddrOf(c)
	if c != nil {
		s.logState(s.closedState(), StateOpen, "handle adopted")
		s.opened = true
	}
}

// IsOpen reports whether the Socket holds a live handle.
func (s *Socket) IsOpen() bool {
	return s.handle != nil
}

// Open connects using a background context.
func (s *Socket) Open() error {
	return s.OpenContext(context.Background())
}

// OpenContext resolves the target and tries each candidate in order until
// one connects. Failed candidates are skipped; when the last one fails the
// error is KindNotOpen naming the target. Calling OpenContext on an open
// Socket does nothing.
func (s *Socket) OpenContext(ctx context.Context) error {
	if s.handle != nil {
		return nil
	}

	candidates, err := resolveCandidates(ctx, s.resolver, s.ifaddrs, s.unixPath, s.host, s.port)
	if err != nil {
		return s.notOpenError(err)
	}

	var lastErr error
	for _, c := range candidates {
		conn, err := s.dial(ctx, c)
		if err != nil {
			lastErr = err
			s.logError("connect "+c.String(), err)
			continue
		}
		s.handle = conn
		s.remoteAddr = remoteAddrOf(conn)
		s.logState(s.closedState(), StateOpen, "connected "+c.String())
		s.opened = true
		return nil
	}
	return s.notOpenError(lastErr)
}

func (s *Socket) dial(ctx context.Context, c Candidate) (net.Conn, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.dialer.DialContext(ctx, c.Network, c.Address)
}

func (s *Socket) notOpenError(cause error) error {
	var msg string
	if s.unixPath != "" {
		msg = fmt.Sprintf("could not connect to socket %s", s.unixPath)
	} else {
		msg = fmt.Sprintf("could not connect to %s:%d", s.host, s.port)
	}
	err := WrapError(KindNotOpen, msg, cause)
	s.logError("open", err)
	return err
}

// Close closes the handle if one is present. Repeated calls are no-ops.
func (s *Socket) Close() error {
	return s.closeWithReason("close")
}

func (s *Socket) closeWithReason(reason string) error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Close()
	s.handle = nil
	s.logState(StateOpen, StateClosed, reason)
	if err != nil {
		return WrapError(KindUnknown, "failed to close socket", err)
	}
	return nil
}

// Read receives up to sz bytes. A receive of zero bytes, or an error the
// receive policy classifies as an orderly shutdown, fails with
// KindEndOfFile; in the latter case the Socket is also closed. sz <= 0
// returns an empty slice without I/O.
func (s *Socket) Read(sz int) ([]byte, error) {
	if s.handle == nil {
		return nil, s.fail("read", NewError(KindNotOpen, "transport not open"))
	}
	if sz <= 0 {
		return []byte{}, nil
	}
	if err := s.applyDeadline(); err != nil {
		return nil, s.fail("read", err)
	}

	buf := make([]byte, sz)
	n, err := s.handle.Read(buf)
	if n > 0 {
		data := buf[:n]
		s.logger.Log(s.event(log.CategoryData, log.DirectionIn, func(ev *log.Event) {
			ev.Data = log.NewDataEvent(data)
		}))
		return data, nil
	}

	switch {
	case err == nil, errors.Is(err, io.EOF):
	case s.recvPolicy.TreatsAsEOF(err, s.goos):
		_ = s.closeWithReason("peer reset after shutdown")
	case isTimeout(err):
		return nil, s.fail("read", WrapError(KindTimedOut, "socket read timed out", err))
	default:
		return nil, s.fail("read", WrapError(KindUnknown, "socket read failed", err))
	}
	return nil, s.fail("read", WrapError(KindEndOfFile, "socket read 0 bytes", err))
}

// Write sends all of buf, looping over partial sends. A send that accepts
// zero bytes is treated as peer closure and fails with KindEndOfFile.
func (s *Socket) Write(buf []byte) error {
	if s.handle == nil {
		return s.fail("write", NewError(KindNotOpen, "transport not open"))
	}

	sent := 0
	for sent < len(buf) {
		if err := s.applyDeadline(); err != nil {
			return s.fail("write", err)
		}
		n, err := s.handle.Write(buf[sent:])
		sent += n
		if err != nil {
			if isTimeout(err) {
				return s.fail("write", WrapError(KindTimedOut, "socket write timed out", err))
			}
			return s.fail("write", WrapError(KindUnknown, "socket write failed", err))
		}
		if n == 0 {
			return s.fail("write", NewError(KindEndOfFile, "socket sent 0 bytes"))
		}
	}

	if len(buf) > 0 {
		s.logger.Log(s.event(log.CategoryData, log.DirectionOut, func(ev *log.Event) {
			ev.Data = log.NewDataEvent(buf)
		}))
	}
	return nil
}

// Flush does nothing: a Socket sends on Write.
func (s *Socket) Flush() error {
	return nil
}

func (s *Socket) applyDeadline() error {
	if s.timeout <= 0 {
		return nil
	}
	if err := s.handle.SetDeadline(time.Now().Add(s.timeout)); err != nil {
		return WrapError(KindUnknown, "failed to set socket deadline", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func remoteAddrOf(c Conn) string {
	if ra, ok := c.(interface{ RemoteAddr() net.Addr }); ok && ra.RemoteAddr() != nil {
		return ra.RemoteAddr().String()
	}
	return ""
}

// fail logs err as an error event and returns it.
func (s *Socket) fail(op string, err error) error {
	s.logError(op, err)
	return err
}

func (s *Socket) logError(op string, err error) {
	s.logger.Log(s.event(log.CategoryError, log.DirectionIn, func(ev *log.Event) {
		ev.Error = &log.ErrorEventData{
			Layer:   log.LayerSocket,
			Message: err.Error(),
			Kind:    KindOf(err).String(),
			Context: op,
		}
	}))
}

// closedState names the state a Socket without a handle is in.
func (s *Socket) closedState() string {
	if s.opened {
		return StateClosed
	}
	return StateUnopened
}

func (s *Socket) logState(oldState, newState, reason string) {
	s.logger.Log(s.event(log.CategoryState, log.DirectionOut, func(ev *log.Event) {
		ev.StateChange = &log.StateChangeEvent{OldState: oldState, NewState: newState, Reason: reason}
	}))
}

func (s *Socket) event(cat log.Category, dir log.Direction, fill func(*log.Event)) log.Event {
	ev := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: s.connID,
		Direction:    dir,
		Layer:        log.LayerSocket,
		Category:     cat,
		Endpoint:     s.Target(),
		RemoteAddr:   s.remoteAddr,
	}
	fill(&ev)
	return ev
}
