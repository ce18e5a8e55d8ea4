package main

import (
	"fmt"

	"voice-intent/internal/function"
	intentUC "voice-intent/internal/intent/usecase"
	"voice-intent/internal/music"
	"voice-intent/pkg/log"

	"github.com/spf13/cobra"
)

func newPromptCmd(logger log.Logger) *cobra.Command {
	var musicDir string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the classification prompt for the built-in functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := music.New(cmd.Context(), logger, music.Config{Dir: musicDir})
			registry, err := function.NewDefaultRegistry(logger, catalog)
			if err != nil {
				return fmt.Errorf("building function registry: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), intentUC.BuildSystemPrompt(registry.Functions()))
			return nil
		},
	}

	cmd.Flags().StringVar(&musicDir, "music-dir", "./music", "directory scanned for the play_music catalog")
	return cmd
}
