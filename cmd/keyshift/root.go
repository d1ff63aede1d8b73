package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
	"github.com/cwbudde/algo-keyshift/internal/config"
	"github.com/cwbudde/algo-keyshift/internal/logging"
)

// maxSemitones bounds accepted shifts to two octaves either way.
const maxSemitones = 24

var errSemitoneRange = errors.New("semitones must be in [-24, 24]")

// app carries state shared by all subcommands after flag parsing.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	v          *viper.Viper
	cfg        config.Config
	log        *zap.Logger
}

// flagKeys maps global flags to configuration keys.
var flagKeys = map[string]string{
	"verbose":       "verbose",
	"log-level":     "log_level",
	"workers":       "workers",
	"frame-length":  "engine.frame_length",
	"overlap":       "engine.overlap",
	"window":        "engine.window",
	"interpolation": "engine.interpolation",
	"bit-depth":     "output.bit_depth",
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	d := config.Default()

	root := &cobra.Command{
		Use:   "keyshift",
		Short: "Shift the pitch of WAV files by semitones",
		Long: `keyshift changes the pitch of a recording by a whole number of semitones
while keeping its duration. Frames of the first channel are Hann-windowed,
overlap-added at a hop scaled by 2^(semitones/12) and resampled back to the
original length. Output is peak-normalized integer PCM.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default is ./keyshift.yaml or $HOME/.config/keyshift/keyshift.yaml)")
	pf.BoolP("verbose", "v", d.Verbose, "log every processing stage")
	pf.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	pf.Int("workers", d.Workers, "parallel batch jobs (0 = number of CPUs)")
	pf.Int("frame-length", d.Engine.FrameLength, "frame length in samples")
	pf.Float64("overlap", d.Engine.Overlap, "frame overlap fraction in [0, 1)")
	pf.String("window", d.Engine.Window, "frame window (rectangular, hann, hamming, blackman)")
	pf.String("interpolation", d.Engine.Interpolation, "resampling interpolation (linear, hermite)")
	pf.Int("bit-depth", d.Output.BitDepth, "output bit depth (16 or 24)")

	root.AddCommand(
		newShiftCmd(a),
		newBatchCmd(a),
		newAnalyzeCmd(a),
		newToneCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.v = config.NewViper(a.configFile)

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			bindErr = errors.Join(bindErr, err)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(a.stderr, cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

// newEngine builds an engine from the loaded configuration.
func (a *app) newEngine(extra ...pitch.Option) (*pitch.Engine, error) {
	opts, err := a.cfg.EngineOptions()
	if err != nil {
		return nil, err
	}

	opts = append(opts, pitch.WithObserver(logging.Observer(a.log)))
	return pitch.NewEngine(append(opts, extra...)...)
}

func parseSemitones(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid semitones %q: %w", s, err)
	}

	return n, checkSemitones(n)
}

func checkSemitones(n int) error {
	if n < -maxSemitones || n > maxSemitones {
		return fmt.Errorf("%w: %d", errSemitoneRange, n)
	}
	return nil
}
