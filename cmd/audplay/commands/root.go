// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "audplay",
	Short: "Play and inspect audio files",
	Long: `audplay - play and inspect audio files.

Supported formats: WAV, AIFF, FLAC, Ogg Vorbis, MP3.

Environment:
  AUDPLAY_SAMPLE_RATE  output sample rate (default 44100)
  AUDPLAY_CHANNELS     output channels (default 2)
  AUDPLAY_BUFFER       output buffer, e.g. 50ms (default: driver choice)
  AUDPLAY_VOLUME       initial global volume (default 1)

Examples:
  audplay probe music.ogg jump.wav
  audplay play --volume 0.5 music.ogg
  audplay tone --freq 880 --duration 500ms -o beep.wav
  audplay convert --rate 22050 --channels 1 music.flac music.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		if err := godotenv.Load(envFile); err != nil {
			logger.Warn("env file not loaded", "path", envFile, "error", err)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with AUDPLAY_* variables")
}
