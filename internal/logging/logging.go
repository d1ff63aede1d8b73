// Package logging builds the zap loggers used by keyshift and adapts them to
// the pitch engine's progress callback.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
)

// New returns a console logger writing to w. verbose forces debug level.
func New(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	if verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)

	return zap.New(core), nil
}

// Observer returns a pitch observer that logs each stage at debug level.
func Observer(log *zap.Logger) pitch.Observer {
	if log == nil {
		return nil
	}

	return func(ev pitch.Event) {
		log.Debug("stage complete",
			zap.Stringer("stage", ev.Stage),
			zap.Int("samples", ev.Samples),
			zap.Int("frames", ev.Frames),
			zap.Int("frame_len", ev.FrameLen),
			zap.Int("last_frame_len", ev.LastFrameLen),
			zap.Int("hop", ev.Hop),
			zap.Float64("ratio", ev.Ratio),
		)
	}
}
