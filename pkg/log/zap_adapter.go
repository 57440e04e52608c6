package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter writes protocol events to a zap.Logger. Data and state events
// are logged at Debug level, error events at Warn.
type ZapAdapter struct {
	logger *zap.Logger
}

// NewZapAdapter creates a ZapAdapter. A nil logger falls back to zap.NewNop.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Named("protocol")}
}

// Log writes the event to the zap logger.
func (a *ZapAdapter) Log(event Event) {
	level := zapcore.DebugLevel
	if event.Error != nil {
		level = zapcore.WarnLevel
	}
	ce := a.logger.Check(level, event.Category.String())
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.String("conn_id", event.ConnectionID),
		zap.Stringer("direction", event.Direction),
		zap.Stringer("layer", event.Layer),
	}
	if event.Endpoint != "" {
		fields = append(fields, zap.String("endpoint", event.Endpoint))
	}
	if event.RemoteAddr != "" {
		fields = append(fields, zap.String("remote_addr", event.RemoteAddr))
	}

	switch {
	case event.Data != nil:
		fields = append(fields,
			zap.Int("size", event.Data.Size),
			zap.Binary("bytes", event.Data.Bytes),
			zap.Bool("truncated", event.Data.Truncated),
		)
	case event.StateChange != nil:
		fields = append(fields,
			zap.String("old_state", event.StateChange.OldState),
			zap.String("new_state", event.StateChange.NewState),
			zap.String("reason", event.StateChange.Reason),
		)
	case event.Error != nil:
		fields = append(fields,
			zap.String("kind", event.Error.Kind),
			zap.String("error", event.Error.Message),
			zap.String("context", event.Error.Context),
		)
	}

	ce.Write(fields...)
}

var _ Logger = (*ZapAdapter)(nil)
