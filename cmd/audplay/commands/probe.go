// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audplay"
)

var probeCmd = &cobra.Command{
	Use:   "probe <file>...",
	Short: "Validate audio files and print their format",
	Long: `Validate audio files and print format, sample rate and channel count.

Every file is decoded once, the way the engine validates assets. The
command fails if any file could not be decoded.

Example:
  audplay probe music.ogg jump.wav`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0

		for _, path := range args {
			a, err := audplay.ReadFile(path)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %d Hz, %d channels, %d bytes\n",
				path, a.Format(), a.SampleRate(), a.Channels(), a.Len())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be decoded", failed, len(args))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
