// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audplay/formats/wav"
	"github.com/ik5/audplay/utils"
)

var (
	toneFreq      float64
	toneDuration  time.Duration
	toneRate      int
	toneChannels  int
	toneAmplitude float32
	toneOutput    string
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Write a sine tone as 16-bit WAV",
	Long: `Write a sine tone as 16-bit PCM WAV. Every channel carries the same
signal.

Example:
  audplay tone --freq 880 --duration 500ms -o beep.wav`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if toneOutput == "" {
			return errors.New("output file is required, use -o flag")
		}
		if toneRate <= 0 || toneChannels <= 0 || toneDuration <= 0 {
			return fmt.Errorf("invalid tone: %d Hz, %d channels, %s", toneRate, toneChannels, toneDuration)
		}

		samples := sineTone(toneFreq, utils.ClampUnit(toneAmplitude), toneRate, toneChannels, toneDuration)

		f, err := os.Create(toneOutput)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		defer f.Close()

		w := bufio.NewWriter(f)
		if err := wav.WriteWAV16(w, toneRate, toneChannels, samples); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("%w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames at %d Hz\n", toneOutput, len(samples)/toneChannels, toneRate)

		return f.Close()
	},
}

// sineTone returns interleaved samples of a sine wave.
func sineTone(freq float64, amplitude float32, rate, channels int, d time.Duration) []int16 {
	frames := int(d.Seconds() * float64(rate))
	out := make([]int16, frames*channels)

	for i := range frames {
		x := amplitude * float32(math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		v := utils.Float32ToInt16(x)
		for c := range channels {
			out[i*channels+c] = v
		}
	}

	return out
}

func init() {
	toneCmd.Flags().Float64Var(&toneFreq, "freq", 440, "frequency in Hz")
	toneCmd.Flags().DurationVar(&toneDuration, "duration", time.Second, "length of the tone")
	toneCmd.Flags().IntVar(&toneRate, "rate", 44100, "sample rate in Hz")
	toneCmd.Flags().IntVar(&toneChannels, "channels", 1, "channel count")
	toneCmd.Flags().Float32Var(&toneAmplitude, "amplitude", 0.5, "peak amplitude in [0, 1]")
	toneCmd.Flags().StringVarP(&toneOutput, "output", "o", "", "output WAV file")

	rootCmd.AddCommand(toneCmd)
}
