// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audplay"
	"github.com/ik5/audplay/formats/wav"
)

var (
	convertRate     int
	convertChannels int
	convertBuffer   int
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output.wav>",
	Short: "Convert any supported file to 16-bit WAV",
	Long: `Decode any supported file, resample it and map its channels, then
write 16-bit PCM WAV.

Examples:
  audplay convert music.flac music.wav
  audplay convert --rate 8000 --channels 1 voice.mp3 voice.wav`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := audplay.ReadFile(args[0])
		if err != nil {
			return err
		}

		src, err := a.Open()
		if err != nil {
			return err
		}

		pcm16, err := audplay.RenderPCM16(src, convertRate, convertChannels, convertBuffer)
		if err != nil {
			return err
		}

		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		defer f.Close()

		w := bufio.NewWriter(f)
		if err := wav.WriteWAV16(w, convertRate, convertChannels, pcm16); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("%w", err)
		}

		logger.Debug("converted", "input", args[0], "format", a.Format(),
			"from_rate", a.SampleRate(), "from_channels", a.Channels())
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames at %d Hz, %d channels\n",
			args[1], len(pcm16)/convertChannels, convertRate, convertChannels)

		return f.Close()
	},
}

func init() {
	convertCmd.Flags().IntVar(&convertRate, "rate", 44100, "output sample rate in Hz")
	convertCmd.Flags().IntVar(&convertChannels, "channels", 2, "output channel count")
	convertCmd.Flags().IntVar(&convertBuffer, "buffer", 4096, "samples per read")

	rootCmd.AddCommand(convertCmd)
}
