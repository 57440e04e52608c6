// Package interactive provides the interactive command-line interface
// for tport-probe.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/tport-io/tport-go/pkg/transport"
)

// Probe drives a buffered transport from typed commands.
type Probe struct {
	tr     *transport.BufferedTransport
	logger *zap.Logger
	out    io.Writer
}

// New creates a probe over tr writing command output to out.
func New(tr *transport.BufferedTransport, logger *zap.Logger, out io.Writer) *Probe {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Probe{tr: tr, logger: logger, out: out}
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends, or ctx is cancelled.
func (p *Probe) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tport> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	p.out = rl.Stdout()

	p.printHelp()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(p.out, "Exiting...")
			return nil
		}
		if !p.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line. It returns false once the user asked to quit.
func (p *Probe) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help", "?":
		p.printHelp()
	case "open", "o":
		p.cmdOpen()
	case "close":
		p.cmdClose()
	case "status", "s":
		p.cmdStatus()
	case "send":
		p.cmdSend([]byte(rest))
	case "hex":
		p.cmdHex(rest)
	case "flush", "f":
		p.cmdFlush()
	case "read", "r":
		p.cmdRead(rest, false)
	case "readall", "ra":
		p.cmdRead(rest, true)
	case "quit", "exit", "q":
		fmt.Fprintln(p.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(p.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (p *Probe) printHelp() {
	fmt.Fprintln(p.out, `
tport-probe Commands:
  Connection:
    open              - Connect to the configured target
    close             - Close the connection
    status            - Show connection and buffer state

  Writing (buffered until flush):
    send <text>       - Queue text bytes
    hex <hex>         - Queue raw bytes, e.g. hex 80010001
    flush             - Send queued bytes

  Reading:
    read <n>          - Read up to n bytes
    readall <n>       - Read exactly n bytes

  General:
    help              - Show this help
    quit              - Exit`)
}

func (p *Probe) socket() *transport.Socket {
	s, _ := p.tr.Inner().(*transport.Socket)
	return s
}

func (p *Probe) target() string {
	if s := p.socket(); s != nil {
		return s.Target()
	}
	return "?"
}

func (p *Probe) cmdOpen() {
	if p.tr.IsOpen() {
		fmt.Fprintf(p.out, "Already connected to %s\n", p.target())
		return
	}
	if err := p.tr.Open(); err != nil {
		p.reportError("open", err)
		return
	}
	p.logger.Info("connected", zap.String("target", p.target()))
	fmt.Fprintf(p.out, "Connected to %s\n", p.target())
}

func (p *Probe) cmdClose() {
	if err := p.tr.Close(); err != nil {
		p.reportError("close", err)
		return
	}
	p.logger.Info("closed", zap.String("target", p.target()))
	fmt.Fprintln(p.out, "Closed")
}

func (p *Probe) cmdStatus() {
	state := "closed"
	if p.tr.IsOpen() {
		state = "open"
	}
	fmt.Fprintln(p.out, "\nTransport Status:")
	fmt.Fprintln(p.out, "-------------------------------------------")
	fmt.Fprintf(p.out, "  Target:        %s\n", p.target())
	fmt.Fprintf(p.out, "  State:         %s\n", state)
	if s := p.socket(); s != nil {
		fmt.Fprintf(p.out, "  Connection ID: %s\n", s.ConnectionID())
		timeout := "none"
		if s.Timeout() > 0 {
			timeout = s.Timeout().String()
		}
		fmt.Fprintf(p.out, "  Timeout:       %s\n", timeout)
	}
	fmt.Fprintf(p.out, "  Block size:    %d\n", p.tr.ReadBlockSize())
	fmt.Fprintf(p.out, "  Write queued:  %d bytes\n", p.tr.Pending())
	fmt.Fprintf(p.out, "  Read buffered: %d bytes\n", p.tr.Buffer().Len())
}

func (p *Probe) cmdSend(data []byte) {
	if len(data) == 0 {
		fmt.Fprintln(p.out, "Usage: send <text>")
		return
	}
	if err := p.tr.Write(data); err != nil {
		p.reportError("write", err)
		return
	}
	fmt.Fprintf(p.out, "Queued %d bytes (%d pending)\n", len(data), p.tr.Pending())
}

func (p *Probe) cmdHex(arg string) {
	data, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
	if err != nil || len(data) == 0 {
		fmt.Fprintln(p.out, "Usage: hex <hex>")
		fmt.Fprintln(p.out, "  Example: hex 80010001")
		return
	}
	p.cmdSend(data)
}

func (p *Probe) cmdFlush() {
	n := p.tr.Pending()
	if err := p.tr.Flush(); err != nil {
		p.reportError("flush", err)
		if n > 0 {
			fmt.Fprintf(p.out, "  %d queued bytes were dropped\n", n)
		}
		return
	}
	fmt.Fprintf(p.out, "Flushed %d bytes\n", n)
}

func (p *Probe) cmdRead(arg string, exact bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		if exact {
			fmt.Fprintln(p.out, "Usage: readall <n>")
		} else {
			fmt.Fprintln(p.out, "Usage: read <n>")
		}
		return
	}

	var data []byte
	if exact {
		data, err = transport.ReadAll(p.tr, n)
	} else {
		data, err = p.tr.Read(n)
	}
	if err != nil {
		p.reportError("read", err)
		return
	}

	fmt.Fprintf(p.out, "Read %d bytes\n", len(data))
	fmt.Fprintf(p.out, "  Hex:  %s\n", hex.EncodeToString(data))
	fmt.Fprintf(p.out, "  Text: %q\n", data)
}

func (p *Probe) reportError(op string, err error) {
	kind := transport.KindOf(err)
	p.logger.Warn("transport error",
		zap.String("op", op),
		zap.Stringer("kind", kind),
		zap.Error(err))
	fmt.Fprintf(p.out, "Error [%s]: %v\n", kind, err)
	if kind == transport.KindEndOfFile && !p.tr.IsOpen() {
		fmt.Fprintln(p.out, "  Connection closed by peer")
	}
}
