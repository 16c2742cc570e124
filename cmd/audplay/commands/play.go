// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audplay"
)

var (
	playVolume float32
	playGlobal float32
	playFire   bool
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play an audio file",
	Long: `Play an audio file on the default output device until it ends or
the command is interrupted.

The gain sent to the device is the instance volume times the global
volume. With --fire the sound is started as a one-shot and --volume is
ignored.

Examples:
  audplay play music.ogg
  audplay play --volume 0.5 --global 0.8 music.ogg
  audplay play --fire jump.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := audplay.NewConfigFromEnv(ctx)
		if err != nil {
			return err
		}

		a, err := audplay.ReadFile(args[0])
		if err != nil {
			return err
		}

		engine, err := audplay.New(audplay.WithConfig(*cfg), audplay.WithLogger(logger))
		if err != nil {
			return err
		}
		defer engine.Close()

		if cmd.Flags().Changed("global") {
			engine.SetVolume(playGlobal)
		}

		var inst *audplay.Instance
		if playFire {
			engine.Play(a)
		} else {
			inst = engine.Instance(a)
			inst.SetVolume(playVolume)
			inst.Play()
		}

		logger.Info("playing", "file", args[0], "format", a.Format(),
			"sample_rate", a.SampleRate(), "channels", a.Channels())

		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				if inst != nil {
					inst.Stop()
				}
				return nil
			case <-ticker.C:
				engine.Tick()

				if inst != nil && !inst.IsPlaying() {
					return nil
				}
				if inst == nil && engine.OneShots() == 0 {
					return nil
				}
			}
		}
	},
}

func init() {
	playCmd.Flags().Float32Var(&playVolume, "volume", 1, "instance volume in [0, 1]")
	playCmd.Flags().Float32Var(&playGlobal, "global", 1, "global volume in [0, 1] (default from AUDPLAY_VOLUME)")
	playCmd.Flags().BoolVar(&playFire, "fire", false, "play as a fire-and-forget one-shot")

	rootCmd.AddCommand(playCmd)
}
