package signal

import (
	"math"
	"testing"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineDuration(t *testing.T) {
	g := NewGenerator()
	if g.SampleRate() != DefaultSampleRate {
		t.Fatalf("SampleRate() = %v, want %v", g.SampleRate(), DefaultSampleRate)
	}

	s, err := g.SineDuration(400, 1, 5)
	if err != nil {
		t.Fatalf("SineDuration() error = %v", err)
	}
	if len(s) != 220500 {
		t.Fatalf("len = %d, want 220500", len(s))
	}

	// Sample 1 of a 400 Hz tone at 44.1 kHz.
	want := math.Sin(2 * math.Pi * 400 / 44100)
	if math.Abs(s[1]-want) > 1e-12 {
		t.Fatalf("s[1] = %v, want %v", s[1], want)
	}
}

func TestSineValidation(t *testing.T) {
	g := NewGenerator(WithSampleRate(8000))

	tests := []struct {
		name    string
		freq    float64
		samples int
	}{
		{name: "zero samples", freq: 100, samples: 0},
		{name: "negative frequency", freq: -1, samples: 8},
		{name: "above nyquist", freq: 4001, samples: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Sine(tt.freq, 1, tt.samples); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestInvalidSampleRateIgnored(t *testing.T) {
	g := NewGenerator(WithSampleRate(-1), nil)
	if g.SampleRate() != DefaultSampleRate {
		t.Fatalf("SampleRate() = %v, want default", g.SampleRate())
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(n1[i]) > 1 {
			t.Fatalf("noise out of range at %d: %v", i, n1[i])
		}
	}

	if _, err := g1.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestMix(t *testing.T) {
	out, err := Mix([]float64{1}, []float64{1, 2, 3}, 0.3)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	want := []float64{1.3, 0.6, 0.9}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := Mix(nil, nil, 1); err == nil {
		t.Fatal("expected error for empty inputs")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}

	silent, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if silent[0] != 0 || silent[1] != 0 {
		t.Fatalf("Normalize(silence) = %v, want zeros", silent)
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target")
	}
}
