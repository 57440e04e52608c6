// Command tport-probe is an interactive client for exercising the tport
// transports against a live peer.
//
// Usage:
//
//	tport-probe [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-host string          Host to connect to (default "localhost")
//	-port int             TCP port (default 9090)
//	-unix string          Unix-domain socket path; overrides host and port
//	-timeout duration     Connect/read/write timeout, 0 to block (default 0)
//	-protocol-log string  Write protocol events to this .tlog file
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Probe a local server
//	tport-probe -port 9090
//
//	# Probe a Unix socket and record everything for tport-log
//	tport-probe -unix /run/rpc.sock -protocol-log probe.tlog
//
// Interactive Commands:
//
//	open, close, status
//	send <text>, hex <hex>, flush
//	read <n>, readall <n>
//	quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tport-io/tport-go/cmd/tport-probe/interactive"
	"github.com/tport-io/tport-go/pkg/config"
	"github.com/tport-io/tport-go/pkg/log"
	"github.com/tport-io/tport-go/pkg/transport"
)

var (
	configFile  = flag.String("config", "", "Configuration file path (YAML)")
	host        = flag.String("host", "localhost", "Host to connect to")
	port        = flag.Int("port", 9090, "TCP port")
	unixPath    = flag.String("unix", "", "Unix-domain socket path; overrides host and port")
	timeout     = flag.Duration("timeout", 0, "Connect/read/write timeout, 0 to block")
	protocolLog = flag.String("protocol-log", "", "Write protocol events to this .tlog file")
	logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("probe failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, then applies explicitly set flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "unix":
			cfg.UnixPath = *unixPath
		case "timeout":
			cfg.TimeoutMS = int(*timeout / time.Millisecond)
		case "protocol-log":
			cfg.ProtocolLog = *protocolLog
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	return cfg, cfg.Validate()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Protocol events always reach the application log at debug level; the
	// .tlog file is optional.
	events := log.NewMultiLogger(log.NewZapAdapter(logger))
	fileLog, err := cfg.OpenProtocolLog()
	if err != nil {
		return err
	}
	if fileLog != nil {
		defer fileLog.Close()
		events = log.NewMultiLogger(log.NewZapAdapter(logger), fileLog)
		logger.Info("recording protocol events", zap.String("file", fileLog.Path()))
	}

	tr := cfg.NewTransport(events)
	defer tr.Close()

	sock := tr.Inner().(*transport.Socket)
	logger.Info("tport-probe ready",
		zap.String("target", sock.Target()),
		zap.String("conn_id", sock.ConnectionID()),
		zap.Duration("timeout", cfg.Timeout()),
		zap.Int("read_block_size", tr.ReadBlockSize()))

	err = interactive.New(tr, logger, os.Stdout).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
