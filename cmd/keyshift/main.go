// Command keyshift shifts the pitch of WAV files by whole semitones while
// keeping their duration.
//
// Usage:
//
//	keyshift shift [flags] <input.wav> <output.wav> <semitones>
//	keyshift batch [flags] --semitones N <input.wav ...>
//	keyshift analyze <input.wav>
//	keyshift tone [flags] <output.wav>
//	keyshift config
//
// Examples:
//
//	keyshift shift song.wav song-up.wav 7
//	keyshift shift song.wav song-down.wav -5
//	keyshift --frame-length 14000 batch -s 3 --out-dir shifted *.wav
//	keyshift tone --freq 400 --noise-freq 4000 --noise-level 0.3 probe.wav
//	keyshift analyze song-up.wav
//
// Settings are read from keyshift.yaml in the working directory or in
// $HOME/.config/keyshift, from KEYSHIFT_* environment variables and from
// flags, in increasing order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
