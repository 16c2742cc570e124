// SPDX-License-Identifier: EPL-2.0

// Command audplay probes, plays, generates and converts audio files with
// the audplay engine.
//
// Usage:
//
//	audplay [flags] <command> [args]
//
// Commands:
//
//	probe    - validate files and print their format
//	play     - play a file on the default output device
//	tone     - write a sine tone as 16-bit WAV
//	convert  - decode any supported file and write 16-bit WAV
//
// Configuration:
//
//	AUDPLAY_* variables are read from the environment and from a .env
//	file in the working directory, if present.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audplay/cmd/audplay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
