package transport

import (
	"errors"
	"runtime"
	"syscall"
)

// RecvErrorRule marks a receive error code as an orderly end of stream on a
// given operating system (runtime.GOOS value).
type RecvErrorRule struct {
	Errno syscall.Errno
	GOOS  string
}

// RecvErrorPolicy is the table of receive errors a Socket treats as end of
// stream instead of propagating.
type RecvErrorPolicy []RecvErrorRule

// DefaultRecvErrorPolicy covers kernels that report ECONNRESET from recv after
// the peer has already performed an orderly shutdown, instead of returning
// zero bytes.
var DefaultRecvErrorPolicy = RecvErrorPolicy{
	{Errno: syscall.ECONNRESET, GOOS: "darwin"},
	{Errno: syscall.ECONNRESET, GOOS: "freebsd"},
}

// TreatsAsEOF reports whether err, raised by a receive on goos, matches a rule.
func (p RecvErrorPolicy) TreatsAsEOF(err error, goos string) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	for _, rule := range p {
		if rule.Errno == errno && rule.GOOS == goos {
			return true
		}
	}
	return false
}

func currentGOOS() string {
	return runtime.GOOS
}
