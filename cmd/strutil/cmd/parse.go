package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/utils/parsex"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

func parseCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "parse --type <kind> [text]",
		Short: "Parse text as a typed value",
		Long: fmt.Sprintf(`Parse text exactly: no surrounding blanks, no '+' sign on integers.
Booleans accept 1, true, on, yes and 0, false, off, no (lower case); empty is false.

Types: %s`, stringx.Join(parsex.Kinds(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			v, err := parsex.ToKind(kind, text)
			if err != nil {
				return err
			}
			return a.println(fmt.Sprint(v))
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "target type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
