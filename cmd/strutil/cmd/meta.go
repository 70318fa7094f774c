package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/core/config"
	"github.com/msto63/strutil/internal/tui/playground"
	"github.com/msto63/strutil/pkg/core/version"
)

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(a.out, version.Get().String())
			return err
		},
	}
}

func configCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.cfg.FilePath()
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(a.out, "file: %s\n", source)
			for _, key := range []string{
				config.KeyLogLevel,
				config.KeyLogFormat,
				config.KeyEncodePolicy,
				config.KeyPadChar,
				config.KeySplitDelimiter,
			} {
				fmt.Fprintf(a.out, "%s = %q  (%s)\n", key, a.cfg.GetString(key), a.cfg.EnvKey(key))
			}
			return nil
		},
	}
}

func playgroundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Interactive TUI showing every transformation of the typed text",
		Long: `Starts the interactive playground.

Navigation:
  Tab       - next encode policy
  Up/Down   - scroll
  Esc       - quit
  Ctrl+C    - quit

When a config file is in use it is watched and a changed encode.policy is
applied while the playground runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playground.Run(a.cfg, a.logger)
		},
	}
}
