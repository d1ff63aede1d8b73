package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-keyshift/internal/batch"
)

type batchFlags struct {
	semitones int
	outDir    string
	suffix    string
	failFast  bool
}

func newBatchCmd(a *app) *cobra.Command {
	var f batchFlags

	cmd := &cobra.Command{
		Use:   "batch --semitones N [flags] <input.wav ...>",
		Short: "Shift many files in parallel",
		Long: `Batch shifts every input by the same number of semitones. Outputs are
named <input><suffix>.wav and written next to the input or into --out-dir.
Jobs run in parallel, bounded by --workers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSemitones(f.semitones); err != nil {
				return err
			}

			ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.runBatch(ctx, args, f)
		},
	}

	cmd.Flags().IntVarP(&f.semitones, "semitones", "s", 0, "pitch shift in semitones (-24 to 24)")
	cmd.Flags().StringVarP(&f.outDir, "out-dir", "o", "", "output directory (default: next to each input)")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "output name suffix (default: _shift<N>)")
	cmd.Flags().BoolVar(&f.failFast, "fail-fast", false, "stop scheduling jobs after the first failure")
	_ = cmd.MarkFlagRequired("semitones")

	return cmd
}

func batchJobs(inputs []string, f batchFlags) []batch.Job {
	suffix := f.suffix
	if suffix == "" {
		suffix = fmt.Sprintf("_shift%+d", f.semitones)
	}

	jobs := make([]batch.Job, 0, len(inputs))
	for _, in := range inputs {
		dir := filepath.Dir(in)
		if f.outDir != "" {
			dir = f.outDir
		}

		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		jobs = append(jobs, batch.Job{
			Input:     in,
			Output:    filepath.Join(dir, base+suffix+".wav"),
			Semitones: f.semitones,
		})
	}

	return jobs
}

func (a *app) runBatch(ctx context.Context, inputs []string, f batchFlags) error {
	if f.outDir != "" {
		if err := os.MkdirAll(f.outDir, 0o755); err != nil {
			return err
		}
	}

	opts, err := a.cfg.EngineOptions()
	if err != nil {
		return err
	}

	r := batch.Runner{
		Options:  opts,
		Workers:  a.cfg.Workers,
		BitDepth: a.cfg.Output.BitDepth,
		FailFast: f.failFast,
		Logger:   a.log,
	}

	results, runErr := r.Run(ctx, batchJobs(inputs, f))

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tOUTPUT\tSAMPLES\tTIME\tSTATUS")
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			res.Job.Input, res.Job.Output, res.Samples, res.Duration.Round(time.Millisecond), status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return runErr
}
