package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-keyshift/wavfile"
)

func newShiftCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift <input.wav> <output.wav> <semitones>",
		Short: "Shift one file by a number of semitones",
		Long: `Shift reads the first channel of input.wav, shifts it by semitones
(-24 to 24) and writes a mono, peak-normalized output.wav at the input sample
rate. Negative shifts may be given directly after the file names.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			semitones, err := parseSemitones(args[2])
			if err != nil {
				return err
			}
			return a.runShift(args[0], args[1], semitones)
		},
	}

	// Stop flag parsing at the first positional argument so "-5" is a value.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) runShift(input, output string, semitones int) error {
	in, bits, err := wavfile.ReadFile(input)
	if err != nil {
		return err
	}

	a.log.Info("loaded input",
		zap.String("path", input),
		zap.Int("sample_rate", in.SampleRate()),
		zap.Int("channels", in.NumChannels()),
		zap.Int("bit_depth", bits),
		zap.Duration("duration", in.Duration()),
	)

	if in.NumChannels() > 1 {
		a.log.Warn("only the first channel is processed", zap.Int("channels", in.NumChannels()))
	}

	e, err := a.newEngine()
	if err != nil {
		return err
	}

	if err := e.Load(in); err != nil {
		return err
	}

	out, err := e.Shift(semitones)
	if err != nil {
		return err
	}

	if err := wavfile.WriteFile(output, out, a.cfg.Output.BitDepth); err != nil {
		return err
	}

	res := e.Result()
	a.log.Info("wrote output",
		zap.String("path", output),
		zap.Int("semitones", semitones),
		zap.Float64("ratio", res.Ratio),
		zap.Int("frames", res.Frames),
		zap.Int("samples", out.Len()),
	)

	return nil
}
