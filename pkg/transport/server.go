package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tport-io/tport-go/pkg/log"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Host to bind. Empty binds the wildcard addresses of every configured
	// family, preferring IPv6.
	Host string

	// Port to bind; 0 picks a free port.
	Port int

	// UnixPath binds a Unix-domain stream socket instead of Host and Port.
	UnixPath string

	// Timeout is given to every accepted Socket.
	Timeout time.Duration

	// Logger for protocol logging (optional). Accepted sockets share it.
	Logger log.Logger

	// Resolver replaces net.DefaultResolver for Host lookups.
	Resolver Resolver
}

// Server listens on one resolved address and hands out each accepted
// connection as its own Socket.
type Server struct {
	config   ServerConfig
	logger   log.Logger
	listenID string

	mu       sync.Mutex
	listener net.Listener
	bound    Candidate
	running  atomic.Bool
}

// NewServer creates a Server. Nothing is bound until Listen.
func NewServer(config ServerConfig) *Server {
	if config.Resolver == nil {
		config.Resolver = net.DefaultResolver
	}
	return &Server{
		config:   config,
		logger:   log.OrNoop(config.Logger),
		listenID: uuid.NewString(),
	}
}

// Listen resolves the configured address passively and binds the first
// candidate that accepts. It fails with KindNotOpen when none does.
func (s *Server) Listen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return fmt.Errorf("server already listening on %s", s.bound)
	}

	candidates, err := resolveCandidates(ctx, s.config.Resolver, net.InterfaceAddrs,
		s.config.UnixPath, s.config.Host, s.config.Port)
	if err != nil {
		return s.bindError(err)
	}

	var lc net.ListenConfig
	var lastErr error
	for _, c := range candidates {
		ln, err := lc.Listen(ctx, c.Network, c.Address)
		if err != nil {
			lastErr = err
			s.logError("bind "+c.String(), err)
			continue
		}
		s.listener = ln
		s.bound = c
		s.running.Store(true)
		s.logState(StateUnopened, StateOpen, "listening on "+ln.Addr().String())
		return nil
	}
	return s.bindError(lastErr)
}

func (s *Server) bindError(cause error) error {
	var msg string
	if s.config.UnixPath != "" {
		msg = fmt.Sprintf("could not bind socket %s", s.config.UnixPath)
	} else {
		msg = fmt.Sprintf("could not bind %s", net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port)))
	}
	err := WrapError(KindNotOpen, msg, cause)
	s.logError("listen", err)
	return err
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

// Accept blocks until a peer connects and returns it as an open Socket that
// the caller owns.
func (s *Server) Accept() (*Socket, error) {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil || !s.running.Load() {
		return nil, NewError(KindNotOpen, "server not listening")
	}

	conn, err := ln.Accept()
	if err != nil {
		if !s.running.Load() {
			return nil, WrapError(KindNotOpen, "server closed", err)
		}
		return nil, WrapError(KindUnknown, "accept failed", err)
	}

	opts := []SocketOption{
		WithTimeout(s.config.Timeout),
		WithProtocolLogger(s.logger),
	}
	switch addr := conn.RemoteAddr().(type) {
	case *net.TCPAddr:
		opts = append(opts, WithHost(addr.IP.String()), WithPort(addr.Port))
	default:
		opts = append(opts, WithUnixPath(s.bound.Address))
	}

	sock := NewSocket(opts...)
	sock.SetHandle(conn)
	return sock, nil
}

// Close stops listening. Sockets already accepted stay open. Repeated calls
// are no-ops.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Swap(false) {
		return nil
	}
	err := s.listener.Close()
	s.logState(StateOpen, StateClosed, "listener closed")
	if err != nil {
		return WrapError(KindUnknown, "failed to close listener", err)
	}
	return nil
}

func (s *Server) logError(op string, err error) {
	s.logger.Log(s.event(log.CategoryError, func(ev *log.Event) {
		ev.Error = &log.ErrorEventData{
			Layer:   log.LayerSocket,
			Message: err.Error(),
			Kind:    KindOf(err).String(),
			Context: op,
		}
	}))
}

func (s *Server) logState(oldState, newState, reason string) {
	s.logger.Log(s.event(log.CategoryState, func(ev *log.Event) {
		ev.StateChange = &log.StateChangeEvent{OldState: oldState, NewState: newState, Reason: reason}
	}))
}

func (s *Server) event(cat log.Category, fill func(*log.Event)) log.Event {
	endpoint := s.config.UnixPath
	if endpoint == "" {
		endpoint = net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	}
	ev := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: s.listenID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerSocket,
		Category:     cat,
		Endpoint:     endpoint,
	}
	fill(&ev)
	return ev
}
