package pitch

import (
	"errors"
	"math"
	"testing"
)

func TestConfigHopSize(t *testing.T) {
	tests := []struct {
		frameLen int
		overlap  float64
		want     int
	}{
		{frameLen: 12000, overlap: 0.75, want: 3000},
		{frameLen: 14000, overlap: 0.75, want: 3500},
		{frameLen: 1024, overlap: 0.5, want: 512},
		{frameLen: 10, overlap: 0, want: 10},
		{frameLen: 3, overlap: 0.5, want: 2},
		{frameLen: 1, overlap: 0, want: 1},
	}

	for _, tt := range tests {
		c := Config{FrameLen: tt.frameLen, Overlap: tt.overlap}
		if got := c.HopSize(); got != tt.want {
			t.Fatalf("Config{%d, %v}.HopSize() = %d, want %d", tt.frameLen, tt.overlap, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "no overlap", cfg: Config{FrameLen: 16, Overlap: 0}},
		{name: "single sample frame", cfg: Config{FrameLen: 1, Overlap: 0}},
		{name: "zero frame length", cfg: Config{FrameLen: 0, Overlap: 0.5}, wantErr: true},
		{name: "negative frame length", cfg: Config{FrameLen: -4, Overlap: 0.5}, wantErr: true},
		{name: "overlap one", cfg: Config{FrameLen: 16, Overlap: 1}, wantErr: true},
		{name: "negative overlap", cfg: Config{FrameLen: 16, Overlap: -0.1}, wantErr: true},
		{name: "NaN overlap", cfg: Config{FrameLen: 16, Overlap: math.NaN()}, wantErr: true},
		{name: "hop rounds to zero", cfg: Config{FrameLen: 4, Overlap: 0.9}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("Validate() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
