package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-keyshift/dsp/core"
	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
	"github.com/cwbudde/algo-keyshift/dsp/spectrum"
	"github.com/cwbudde/algo-keyshift/internal/testutil"
	"github.com/cwbudde/algo-keyshift/wavfile"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestToneShiftAnalyze(t *testing.T) {
	dir := t.TempDir()
	tone := filepath.Join(dir, "tone.wav")
	up := filepath.Join(dir, "up.wav")

	if _, _, err := run(t, "tone", "--seconds", "5", tone); err != nil {
		t.Fatalf("tone error = %v", err)
	}

	_, logs, err := run(t, "shift", tone, up, "7")
	if err != nil {
		t.Fatalf("shift error = %v", err)
	}
	if !strings.Contains(logs, "wrote output") {
		t.Fatalf("missing info log:\n%s", logs)
	}

	b, bits, err := wavfile.ReadFile(up)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if b.Len() != 220500 || b.SampleRate() != 44100 || bits != 16 {
		t.Fatalf("output len=%d rate=%d bits=%d", b.Len(), b.SampleRate(), bits)
	}

	got, err := spectrum.DominantFrequency(b.Channel(0), 44100)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	testutil.RequireRelative(t, "dominant frequency", got, 400*core.SemitoneRatio(7), 0.05)

	out, _, err := run(t, "analyze", "--reference", "400", up)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	for _, want := range []string{"Sample rate:", "44100 Hz", "Dominant frequency:", "semitones"} {
		if !strings.Contains(out, want) {
			t.Fatalf("analyze output missing %q:\n%s", want, out)
		}
	}
}

func TestShiftNegativeSemitones(t *testing.T) {
	dir := t.TempDir()
	tone := filepath.Join(dir, "tone.wav")
	down := filepath.Join(dir, "down.wav")

	if _, _, err := run(t, "tone", "--seconds", "2", tone); err != nil {
		t.Fatalf("tone error = %v", err)
	}

	if _, _, err := run(t, "--frame-length", "4096", "shift", tone, down, "-5"); err != nil {
		t.Fatalf("shift error = %v", err)
	}

	b, _, err := wavfile.ReadFile(down)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	got, err := spectrum.DominantFrequency(b.Channel(0), 44100)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	if got >= 400 {
		t.Fatalf("dominant frequency %.1f Hz not below 400 Hz", got)
	}
}

func TestShiftVerboseLogsStages(t *testing.T) {
	dir := t.TempDir()
	tone := filepath.Join(dir, "tone.wav")

	if _, _, err := run(t, "tone", "--seconds", "1", tone); err != nil {
		t.Fatalf("tone error = %v", err)
	}

	_, logs, err := run(t, "-v", "--frame-length", "2048", "shift", tone, filepath.Join(dir, "o.wav"), "3")
	if err != nil {
		t.Fatalf("shift error = %v", err)
	}
	if strings.Count(logs, "stage complete") != 4 {
		t.Fatalf("want 4 stage logs:\n%s", logs)
	}
}

func TestShiftErrors(t *testing.T) {
	dir := t.TempDir()
	tone := filepath.Join(dir, "tone.wav")
	if _, _, err := run(t, "tone", "--seconds", "0.1", "--rate", "8000", tone); err != nil {
		t.Fatalf("tone error = %v", err)
	}

	out := filepath.Join(dir, "out.wav")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "out of range", args: []string{"shift", tone, out, "25"}, wantErr: errSemitoneRange},
		{name: "single frame", args: []string{"shift", tone, out, "2"}, wantErr: pitch.ErrDegenerateSynthesis},
		{name: "bad overlap", args: []string{"--overlap", "1", "shift", tone, out, "2"}, wantErr: pitch.ErrInvalidConfiguration},
		{name: "not a number", args: []string{"shift", tone, out, "up"}},
		{name: "missing input", args: []string{"shift", filepath.Join(dir, "nope.wav"), out, "1"}},
		{name: "bad bit depth", args: []string{"--bit-depth", "8", "config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "shifted")

	var inputs []string
	for _, name := range []string{"a.wav", "b.wav"} {
		p := filepath.Join(dir, name)
		if _, _, err := run(t, "tone", "--seconds", "1", "--rate", "8000", p); err != nil {
			t.Fatalf("tone error = %v", err)
		}
		inputs = append(inputs, p)
	}

	args := append([]string{"--frame-length", "1024", "--workers", "2", "batch", "-s", "-3", "-o", outDir}, inputs...)
	out, _, err := run(t, args...)
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if strings.Count(out, " ok\n") != 2 {
		t.Fatalf("unexpected batch report:\n%s", out)
	}

	for _, name := range []string{"a_shift-3.wav", "b_shift-3.wav"} {
		b, _, err := wavfile.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", name, err)
		}
		if b.Len() != 8000 {
			t.Fatalf("%s: len = %d, want 8000", name, b.Len())
		}
	}
}

func TestBatchJobs(t *testing.T) {
	jobs := batchJobs([]string{"/music/song.wav", "take.WAV"}, batchFlags{semitones: 4, outDir: "/tmp/x"})

	if jobs[0].Output != filepath.Join("/tmp/x", "song_shift+4.wav") {
		t.Fatalf("Output = %q", jobs[0].Output)
	}
	if jobs[1].Output != filepath.Join("/tmp/x", "take_shift+4.wav") || jobs[1].Semitones != 4 {
		t.Fatalf("job = %+v", jobs[1])
	}

	jobs = batchJobs([]string{"/music/song.wav"}, batchFlags{semitones: -2, suffix: "-low"})
	if jobs[0].Output != filepath.Join("/music", "song-low.wav") {
		t.Fatalf("Output = %q", jobs[0].Output)
	}
}

func TestConfigCommand(t *testing.T) {
	out, _, err := run(t, "--frame-length", "14000", "--window", "blackman", "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}

	for _, want := range []string{"frame_length: 14000", "window: blackman", "overlap: 0.75", "bit_depth: 16"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("KEYSHIFT_ENGINE_OVERLAP", "0.5")

	out, _, err := run(t, "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "overlap: 0.5") {
		t.Fatalf("env override missing:\n%s", out)
	}
}
