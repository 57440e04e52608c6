package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tport-io/tport-go/pkg/log"
	"github.com/tport-io/tport-go/pkg/transport/mocks"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(ev log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) byCategory(cat log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, ev := range r.events {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}

// setupTCPServer starts a loopback listener whose accepted connections are
// handed to handle. It returns the port.
func setupTCPServer(t *testing.T, handle func(net.Conn)) int {
	t.Helper()
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go handle(conn)
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port
}

func echo(conn net.Conn) {
	defer conn.Close()
	_, _ = io.Copy(conn, conn)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestSocketDefaults(t *testing.T) {
	s := NewSocket()
	assert.Equal(t, "localhost:9090", s.Target())
	assert.False(t, s.IsOpen())
	assert.Zero(t, s.Timeout())
	assert.NotEmpty(t, s.ConnectionID())

	u := NewSocket(WithUnixPath("/tmp/rpc.sock"), WithHost("ignored"), WithConnectionID("c1"))
	assert.Equal(t, "/tmp/rpc.sock", u.Target())
	assert.Equal(t, "c1", u.ConnectionID())
}

func TestSocketTCPRoundTrip(t *testing.T) {
	port := setupTCPServer(t, echo)
	rec := &eventRecorder{}

	s := NewSocket(WithHost("127.0.0.1"), WithPort(port), WithTimeout(2*time.Second), WithProtocolLogger(rec))
	require.NoError(t, s.Open())
	defer s.Close()
	assert.True(t, s.IsOpen())

	// Opening again keeps the existing connection.
	require.NoError(t, s.Open())

	require.NoError(t, s.Write([]byte("hello")))
	require.NoError(t, s.Flush())

	got, err := ReadAll(s, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	states := rec.byCategory(log.CategoryState)
	require.Len(t, states, 1)
	assert.Equal(t, StateUnopened, states[0].StateChange.OldState)
	assert.Equal(t, StateOpen, states[0].StateChange.NewState)
	assert.NotEmpty(t, states[0].RemoteAddr)

	data := rec.byCategory(log.CategoryData)
	require.NotEmpty(t, data)
	assert.Equal(t, log.DirectionOut, data[0].Direction)
	assert.Equal(t, []byte("hello"), data[0].Data.Bytes)
}

func TestSocketUnixRoundTrip(t *testing.T) {
	// Keep the path short; sun_path is limited to ~104 bytes on some systems.
	dir, err := os.MkdirTemp("", "tp")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "s.sock")

	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			echo(conn)
		}
	}()

	s := NewSocket(WithUnixPath(path), WithHost("does.not.resolve.invalid"), WithPort(1))
	require.NoError(t, s.Open())
	defer s.Close()

	require.NoError(t, s.Write([]byte("ping")))
	got, err := ReadAll(s, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("ping"), got)
}

func TestSocketOpenFailures(t *testing.T) {
	t.Run("nothing listening", func(t *testing.T) {
		port := freePort(t)
		s := NewSocket(WithHost("127.0.0.1"), WithPort(port), WithTimeout(time.Second))

		err := s.Open()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOpen)
		assert.Contains(t, err.Error(), "could not connect to 127.0.0.1:"+strconv.Itoa(port))
		assert.False(t, s.IsOpen())
	})

	t.Run("missing unix socket", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.sock")
		s := NewSocket(WithUnixPath(path))

		err := s.Open()
		require.Error(t, err)
		assert.Equal(t, KindNotOpen, KindOf(err))
		assert.Contains(t, err.Error(), "could not connect to socket "+path)
	})

	t.Run("resolver failure", func(t *testing.T) {
		resolver := mocks.NewMockResolver(t)
		resolver.EXPECT().LookupIPAddr(mock.Anything, "rpc.example").
			Return(nil, &net.DNSError{Err: "no such host", Name: "rpc.example", IsNotFound: true}).Once()

		s := NewSocket(WithHost("rpc.example"), WithResolver(resolver))
		err := s.Open()
		assert.ErrorIs(t, err, ErrNotOpen)
		assert.Contains(t, err.Error(), "could not connect to rpc.example:9090")
	})
}

func TestSocketOpenTriesCandidatesInOrder(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().LookupIPAddr(mock.Anything, "rpc.example").Return([]net.IPAddr{
		{IP: net.ParseIP("192.0.2.1")},
		{IP: net.ParseIP("192.0.2.2")},
		{IP: net.ParseIP("192.0.2.3")},
	}, nil).Once()

	client, server := net.Pipe()
	defer server.Close()

	refused := &net.OpError{Op: "dial", Net: "tcp4", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	dialer := mocks.NewMockDialer(t)
	dialer.EXPECT().DialContext(mock.Anything, "tcp4", "192.0.2.1:7000").Return(nil, refused).Once()
	dialer.EXPECT().DialContext(mock.Anything, "tcp4", "192.0.2.2:7000").Return(nil, refused).Once()
	dialer.EXPECT().DialContext(mock.Anything, "tcp4", "192.0.2.3:7000").Return(client, nil).Once()

	rec := &eventRecorder{}
	s := NewSocket(WithHost("rpc.example"), WithPort(7000), WithResolver(resolver), WithDialer(dialer), WithProtocolLogger(rec))
	s.ifaddrs = nil

	require.NoError(t, s.Open())
	assert.True(t, s.IsOpen())
	assert.Len(t, rec.byCategory(log.CategoryError), 2)

	require.NoError(t, s.Close())
}

func TestSocketOpenAllCandidatesFail(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().LookupIPAddr(mock.Anything, "rpc.example").Return([]net.IPAddr{
		{IP: net.ParseIP("192.0.2.1")},
		{IP: net.ParseIP("2001:db8::1")},
	}, nil).Once()

	dialErr := errors.New("unreachable")
	dialer := mocks.NewMockDialer(t)
	dialer.EXPECT().DialContext(mock.Anything, mock.Anything, mock.Anything).Return(nil, dialErr).Times(2)

	s := NewSocket(WithHost("rpc.example"), WithPort(7000), WithResolver(resolver), WithDialer(dialer))
	s.ifaddrs = nil

	err := s.Open()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, err, dialErr)
	assert.Contains(t, err.Error(), "could not connect to rpc.example:7000")
}

func TestSocketOpenBoundsEachAttempt(t *testing.T) {
	dialer := mocks.NewMockDialer(t)
	dialer.EXPECT().DialContext(mock.Anything, "tcp4", "192.0.2.1:7000").
		RunAndReturn(func(ctx context.Context, _, _ string) (net.Conn, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 200*time.Millisecond)
			return nil, context.DeadlineExceeded
		}).Once()

	s := NewSocket(WithHost("192.0.2.1"), WithPort(7000), WithDialer(dialer), WithTimeout(250*time.Millisecond))
	s.ifaddrs = nil

	assert.ErrorIs(t, s.Open(), ErrNotOpen)
}

func TestSocketWriteLoopsOverPartialSends(t *testing.T) {
	conn := mocks.NewMockConn(t)
	var sent []byte
	conn.EXPECT().Write(mock.Anything).RunAndReturn(func(p []byte) (int, error) {
		n := min(3, len(p))
		sent = append(sent, p[:n]...)
		return n, nil
	}).Times(4)

	s := NewSocket()
	s.SetHandle(conn)

	payload := []byte("0123456789")
	require.NoError(t, s.Write(payload))
	assert.Equal(t, payload, sent)
}

func TestSocketWriteZeroBytesIsEndOfFile(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().Write(mock.Anything).Return(0, nil).Once()

	s := NewSocket()
	s.SetHandle(conn)

	err := s.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrEndOfFile)
	assert.Contains(t, err.Error(), "0 bytes")
}

func TestSocketWriteFailure(t *testing.T) {
	pipeErr := os.NewSyscallError("write", syscall.EPIPE)
	conn := mocks.NewMockConn(t)
	conn.EXPECT().Write(mock.Anything).Return(0, pipeErr).Once()

	s := NewSocket()
	s.SetHandle(conn)

	err := s.Write([]byte("x"))
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.ErrorIs(t, err, syscall.EPIPE)
}

func TestSocketReadZeroBytesIsEndOfFile(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"zero without error", nil},
		{"io.EOF", io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := mocks.NewMockConn(t)
			conn.EXPECT().Read(mock.Anything).Return(0, tt.err).Once()

			s := NewSocket()
			s.SetHandle(conn)

			_, err := s.Read(16)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEndOfFile)
			assert.Contains(t, err.Error(), "0 bytes")
			assert.True(t, s.IsOpen())
		})
	}
}

func TestSocketReadReturnsWhatArrived(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().Read(mock.Anything).RunAndReturn(func(p []byte) (int, error) {
		assert.Len(t, p, 64)
		return copy(p, "abc"), nil
	}).Once()

	s := NewSocket()
	s.SetHandle(conn)

	got, err := s.Read(64)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestSocketReadNonPositiveSize(t *testing.T) {
	conn := mocks.NewMockConn(t)

	s := NewSocket()
	s.SetHandle(conn)

	got, err := s.Read(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSocketReadConnReset(t *testing.T) {
	reset := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}

	t.Run("treated as end of stream on darwin", func(t *testing.T) {
		conn := mocks.NewMockConn(t)
		conn.EXPECT().Read(mock.Anything).Return(0, reset).Once()
		conn.EXPECT().Close().Return(nil).Once()

		rec := &eventRecorder{}
		s := NewSocket(WithProtocolLogger(rec))
		s.SetHandle(conn)
		s.goos = "darwin"

		_, err := s.Read(8)
		assert.ErrorIs(t, err, ErrEndOfFile)
		assert.False(t, s.IsOpen())

		states := rec.byCategory(log.CategoryState)
		require.Len(t, states, 2)
		assert.Equal(t, StateClosed, states[1].StateChange.NewState)
	})

	t.Run("propagated on linux", func(t *testing.T) {
		conn := mocks.NewMockConn(t)
		conn.EXPECT().Read(mock.Anything).Return(0, reset).Once()

		s := NewSocket()
		s.SetHandle(conn)
		s.goos = "linux"

		_, err := s.Read(8)
		assert.Equal(t, KindUnknown, KindOf(err))
		assert.ErrorIs(t, err, syscall.ECONNRESET)
		assert.True(t, s.IsOpen())
	})

	t.Run("empty policy", func(t *testing.T) {
		conn := mocks.NewMockConn(t)
		conn.EXPECT().Read(mock.Anything).Return(0, reset).Once()

		s := NewSocket(WithRecvErrorPolicy(nil))
		s.SetHandle(conn)
		s.goos = "darwin"

		_, err := s.Read(8)
		assert.Equal(t, KindUnknown, KindOf(err))
	})
}

func TestSocketReadTimeout(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().SetDeadline(mock.AnythingOfType("time.Time")).Return(nil).Once()
	conn.EXPECT().Read(mock.Anything).Return(0, os.ErrDeadlineExceeded).Once()

	s := NewSocket(WithTimeout(time.Second))
	s.SetHandle(conn)

	_, err := s.Read(8)
	assert.ErrorIs(t, err, ErrTimedOut)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
}

func TestSocketRealReadTimeout(t *testing.T) {
	port := setupTCPServer(t, func(conn net.Conn) {
		// Hold the connection open without writing.
		time.Sleep(time.Second)
		conn.Close()
	})

	s := NewSocket(WithHost("127.0.0.1"), WithPort(port), WithTimeout(50*time.Millisecond))
	require.NoError(t, s.Open())
	defer s.Close()

	_, err := s.Read(1)
	assert.Equal(t, KindTimedOut, KindOf(err))
}

func TestSocketPeerClose(t *testing.T) {
	port := setupTCPServer(t, func(conn net.Conn) {
		conn.Write([]byte("bye"))
		conn.Close()
	})

	s := NewSocket(WithHost("127.0.0.1"), WithPort(port), WithTimeout(2*time.Second))
	require.NoError(t, s.Open())
	defer s.Close()

	got, err := ReadAll(s, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("bye"), got)

	_, err = s.Read(1)
	assert.ErrorIs(t, err, ErrEndOfFile)
}

func TestSocketNotOpen(t *testing.T) {
	s := NewSocket()

	_, err := s.Read(4)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, s.Write([]byte("x")), ErrNotOpen)
	assert.NoError(t, s.Flush())
}

func TestSocketClose(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().Close().Return(nil).Once()

	rec := &eventRecorder{}
	s := NewSocket(WithProtocolLogger(rec))
	s.SetHandle(conn)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.False(t, s.IsOpen())

	_, err := s.Read(1)
	assert.ErrorIs(t, err, ErrNotOpen)

	states := rec.byCategory(log.CategoryState)
	require.Len(t, states, 2)
	assert.Equal(t, StateUnopened, states[0].StateChange.OldState)
	assert.Equal(t, StateOpen, states[1].StateChange.OldState)
	assert.Equal(t, StateClosed, states[1].StateChange.NewState)
}

func TestSocketCloseError(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().Close().Return(errors.New("close failed")).Once()

	s := NewSocket()
	s.SetHandle(conn)

	assert.Error(t, s.Close())
	assert.False(t, s.IsOpen())
}

func TestSocketSetTimeoutClearsDeadline(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().SetDeadline(time.Time{}).Return(nil).Once()

	s := NewSocket(WithTimeout(time.Second))
	s.SetHandle(conn)

	require.NoError(t, s.SetTimeout(0))
	assert.Zero(t, s.Timeout())
}
