package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-keyshift/dsp/buffer"
	"github.com/cwbudde/algo-keyshift/dsp/signal"
	"github.com/cwbudde/algo-keyshift/wavfile"
)

type toneFlags struct {
	freq       float64
	seconds    float64
	rate       int
	noiseFreq  float64
	noiseLevel float64
}

func newToneCmd(a *app) *cobra.Command {
	var f toneFlags

	cmd := &cobra.Command{
		Use:   "tone [flags] <output.wav>",
		Short: "Write a test sine tone, optionally with a second interfering tone",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTone(args[0], f)
		},
	}

	cmd.Flags().Float64Var(&f.freq, "freq", 400, "tone frequency in Hz")
	cmd.Flags().Float64Var(&f.seconds, "seconds", 5, "duration in seconds")
	cmd.Flags().IntVar(&f.rate, "rate", 44100, "sample rate in Hz")
	cmd.Flags().Float64Var(&f.noiseFreq, "noise-freq", 0, "frequency of an added interfering tone in Hz (0 = none)")
	cmd.Flags().Float64Var(&f.noiseLevel, "noise-level", 0.3, "amplitude of the interfering tone relative to the main tone")

	return cmd
}

func (a *app) runTone(path string, f toneFlags) error {
	g := signal.NewGenerator(signal.WithSampleRate(float64(f.rate)))

	samples, err := g.SineDuration(f.freq, 1, f.seconds)
	if err != nil {
		return err
	}

	if f.noiseFreq > 0 {
		noise, err := g.SineDuration(f.noiseFreq, 1, f.seconds)
		if err != nil {
			return err
		}

		if samples, err = signal.Mix(samples, noise, f.noiseLevel); err != nil {
			return err
		}
	}

	b, err := buffer.Mono(f.rate, samples)
	if err != nil {
		return err
	}

	if err := wavfile.WriteFile(path, b, a.cfg.Output.BitDepth); err != nil {
		return err
	}

	a.log.Info("wrote tone",
		zap.String("path", path),
		zap.Float64("freq", f.freq),
		zap.Int("samples", len(samples)),
	)

	return nil
}
