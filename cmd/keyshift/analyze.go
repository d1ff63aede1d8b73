package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-keyshift/dsp/core"
	"github.com/cwbudde/algo-keyshift/dsp/spectrum"
	timestats "github.com/cwbudde/algo-keyshift/stats/time"
	"github.com/cwbudde/algo-keyshift/wavfile"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var reference float64

	cmd := &cobra.Command{
		Use:   "analyze <input.wav>",
		Short: "Print level statistics and the dominant frequency of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runAnalyze(args[0], reference)
		},
	}

	cmd.Flags().Float64Var(&reference, "reference", 0,
		"reference frequency in Hz; prints the semitone offset of the dominant frequency")

	return cmd
}

func (a *app) runAnalyze(path string, reference float64) error {
	b, bits, err := wavfile.ReadFile(path)
	if err != nil {
		return err
	}

	samples := b.Channel(0)
	st := timestats.Calculate(samples)

	dominant, err := spectrum.DominantFrequency(samples, float64(b.SampleRate()))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", path)
	fmt.Fprintf(tw, "Sample rate:\t%d Hz\n", b.SampleRate())
	fmt.Fprintf(tw, "Channels:\t%d\n", b.NumChannels())
	fmt.Fprintf(tw, "Bit depth:\t%d\n", bits)
	fmt.Fprintf(tw, "Samples:\t%d\n", st.Length)
	fmt.Fprintf(tw, "Duration:\t%s\n", b.Duration())
	fmt.Fprintf(tw, "RMS:\t%.4f (%.2f dBFS)\n", st.RMS, st.RMS_dB)
	fmt.Fprintf(tw, "Peak:\t%.4f (%.2f dBFS)\n", st.Peak, st.Peak_dB)
	fmt.Fprintf(tw, "Crest factor:\t%.3f\n", st.CrestFactor)
	fmt.Fprintf(tw, "DC offset:\t%.6f\n", st.DC)
	fmt.Fprintf(tw, "Zero crossings:\t%d\n", st.ZeroCrossings)
	fmt.Fprintf(tw, "Dominant frequency:\t%.2f Hz\n", dominant)

	if reference > 0 {
		fmt.Fprintf(tw, "Offset from %.2f Hz:\t%+.2f semitones\n", reference, core.RatioSemitones(dominant/reference))
	}

	return tw.Flush()
}
