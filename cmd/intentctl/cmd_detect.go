package main

import (
	"fmt"
	"strings"

	"voice-intent/config"
	"voice-intent/internal/app"
	"voice-intent/internal/assistant"
	"voice-intent/pkg/log"

	"github.com/spf13/cobra"
)

func newDetectCmd(logger log.Logger) *cobra.Command {
	var (
		deviceID string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "detect <text...>",
		Short: "Classify one utterance with the configured providers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			l := logger
			if verbose {
				l = log.Init(log.ZapConfig{
					Level:        cfg.Logger.Level,
					Mode:         cfg.Logger.Mode,
					Encoding:     cfg.Logger.Encoding,
					ColorEnabled: cfg.Logger.ColorEnabled,
				})
			}

			application, err := app.New(cmd.Context(), cfg, l)
			if err != nil {
				return err
			}
			defer application.Close()

			return runDetect(cmd, application.Assistant, deviceID, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&deviceID, "device", "intentctl", "device id the session is keyed by")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log with the configured logger")
	return cmd
}

func runDetect(cmd *cobra.Command, uc assistant.UseCase, deviceID, text string) error {
	out, err := uc.Detect(cmd.Context(), assistant.DetectInput{DeviceID: deviceID, Text: text})
	if err != nil {
		return fmt.Errorf("detecting intent: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Kind:    %s\n", out.Intent.Kind)
	fmt.Fprintf(w, "Name:    %s\n", out.Intent.Name)
	fmt.Fprintf(w, "Cached:  %t\n", out.Cached)
	fmt.Fprintf(w, "Result:  %s\n", out.Result)
	return nil
}
