package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/core/config"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

// delimiter returns the flag value when set, otherwise split.delimiter
func (a *app) delimiter(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("delim") {
		return flag
	}
	return a.cfg.GetString(config.KeySplitDelimiter)
}

func splitCmd(a *app) *cobra.Command {
	var delim string

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split on a literal delimiter, one part per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			for _, part := range stringx.Split(text, a.delimiter(cmd, delim)) {
				if err := a.println(part); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", ",", "delimiter (default: split.delimiter)")
	return cmd
}

func linesCmd(a *app) *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "lines [text]",
		Short: "Number the lines of text (LF, CRLF or CR breaks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			lines := stringx.SplitLines(text)
			if count {
				return a.println(fmt.Sprint(len(lines)))
			}
			for i, line := range lines {
				if err := a.println(fmt.Sprintf("%d\t%s", i+1, line)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "print only the number of lines")
	return cmd
}

func joinCmd(a *app) *cobra.Command {
	var delim string

	cmd := &cobra.Command{
		Use:   "join [parts...]",
		Short: "Join arguments, or stdin lines, with a delimiter",
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := args
			if len(parts) == 0 {
				text, err := a.inputText(nil)
				if err != nil {
					return err
				}
				parts = stringx.SplitLines(text)
			}
			return a.println(stringx.Join(parts, a.delimiter(cmd, delim)))
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", ",", "delimiter (default: split.delimiter)")
	return cmd
}
