package transport

import (
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
)

func TestDefaultRecvErrorPolicy(t *testing.T) {
	reset := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}

	tests := []struct {
		name string
		err  error
		goos string
		want bool
	}{
		{"reset on darwin", reset, "darwin", true},
		{"reset on freebsd", reset, "freebsd", true},
		{"reset on linux", reset, "linux", false},
		{"reset on windows", reset, "windows", false},
		{"bare errno", syscall.ECONNRESET, "darwin", true},
		{"other errno", syscall.EPIPE, "darwin", false},
		{"not an errno", errors.New("boom"), "darwin", false},
		{"nil", nil, "darwin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRecvErrorPolicy.TreatsAsEOF(tt.err, tt.goos); got != tt.want {
				t.Errorf("TreatsAsEOF = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCustomRecvErrorPolicy(t *testing.T) {
	policy := RecvErrorPolicy{{Errno: syscall.ECONNRESET, GOOS: "linux"}}
	if !policy.TreatsAsEOF(syscall.ECONNRESET, "linux") {
		t.Error("custom rule not applied")
	}
	if policy.TreatsAsEOF(syscall.ECONNRESET, "darwin") {
		t.Error("custom policy should replace the default table")
	}
	if (RecvErrorPolicy(nil)).TreatsAsEOF(syscall.ECONNRESET, "darwin") {
		t.Error("empty policy should match nothing")
	}
}
