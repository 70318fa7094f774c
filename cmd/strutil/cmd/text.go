package cmd

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/core/config"
	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

func simpleCmd(a *app, use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			return a.println(fn(text))
		},
	}
}

func lowerCmd(a *app) *cobra.Command {
	return simpleCmd(a, "lower", "Lower-case ASCII letters", stringx.ToLower)
}

func upperCmd(a *app) *cobra.Command {
	return simpleCmd(a, "upper", "Upper-case ASCII letters", stringx.ToUpper)
}

func titleCmd(a *app) *cobra.Command {
	return simpleCmd(a, "title", "Title-case words (Unicode aware)", stringx.ToTitleCase)
}

func unixpathCmd(a *app) *cobra.Command {
	return simpleCmd(a, "unixpath", `Replace '\' with '/' and collapse separator runs`, stringx.ToUnixPath)
}

var caseStyles = map[string]func(string) string{
	"snake":  stringx.ToSnakeCase,
	"kebab":  stringx.ToKebabCase,
	"camel":  stringx.ToCamelCase,
	"pascal": stringx.ToPascalCase,
}

func caseCmd(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "case [text]",
		Short: "Convert between naming conventions",
		Long: `Convert text to a naming convention.

Examples:
  strutil case --style snake HelloWorld     # hello_world
  strutil case --style camel user-id        # userId`,
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := caseStyles[stringx.ToLower(style)]
			if !ok {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "case", style, "snake, kebab, camel or pascal")
			}
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			return a.println(convert(text))
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "snake", "snake, kebab, camel or pascal")
	return cmd
}

func trimCmd(a *app) *cobra.Command {
	var left, right bool

	cmd := &cobra.Command{
		Use:   "trim [text]",
		Short: "Strip leading and trailing spaces and tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			switch {
			case left:
				text = stringx.TrimLeft(text)
			case right:
				text = stringx.TrimRight(text)
			default:
				text = stringx.Trim(text)
			}
			return a.println(text)
		},
	}

	cmd.Flags().BoolVar(&left, "left", false, "trim the start only")
	cmd.Flags().BoolVar(&right, "right", false, "trim the end only")
	cmd.MarkFlagsMutuallyExclusive("left", "right")
	return cmd
}

func padCmd(a *app) *cobra.Command {
	var (
		width  int
		char   string
		left   bool
		center bool
	)

	cmd := &cobra.Command{
		Use:   "pad [text]",
		Short: "Pad text to a width in runes",
		Long: `Pad text to --width runes. Text that is already wide enough is unchanged.
The pad character defaults to pad.char from the configuration.

Examples:
  strutil pad --width 6 --char 0 --left 42  # 000042
  strutil pad --width 7 --center --char '*' abc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("char") {
				char = a.cfg.GetString(config.KeyPadChar)
			}
			if utf8.RuneCountInString(char) != 1 {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "pad", char, "exactly one character")
			}
			if width < 0 {
				return mdwerrors.OutOfRange(mdwerrors.ModuleCLI, "pad", width, 0, nil)
			}

			text, err := a.inputText(args)
			if err != nil {
				return err
			}

			r, _ := utf8.DecodeRuneInString(char)
			switch {
			case center:
				text = stringx.Center(text, width, r)
			case left:
				text = stringx.PadLeft(text, width, r)
			default:
				text = stringx.PadRight(text, width, r)
			}
			return a.println(text)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "target width in runes")
	cmd.Flags().StringVarP(&char, "char", "c", " ", "pad character")
	cmd.Flags().BoolVar(&left, "left", false, "pad on the left")
	cmd.Flags().BoolVar(&center, "center", false, "pad both sides")
	cmd.MarkFlagsMutuallyExclusive("left", "center")
	_ = cmd.MarkFlagRequired("width")
	return cmd
}

func replaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <pattern> <replacement> [text]",
		Short: "Replace every occurrence of a literal pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args[2:])
			if err != nil {
				return err
			}
			return a.println(stringx.Replace(text, args[0], args[1]))
		},
	}
}

func hasCmd(a *app) *cobra.Command {
	var (
		prefix, suffix, contains string
		ignoreCase               bool
	)

	cmd := &cobra.Command{
		Use:   "has (--prefix|--suffix|--contains) <pattern> [text]",
		Short: "Test for a prefix, suffix or substring (exit 1 when false)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}

			var found bool
			switch {
			case cmd.Flags().Changed("prefix"):
				found = pick(ignoreCase, stringx.BeginsWithIgnoreCase, stringx.BeginsWith)(text, prefix)
			case cmd.Flags().Changed("suffix"):
				found = pick(ignoreCase, stringx.EndsWithIgnoreCase, stringx.EndsWith)(text, suffix)
			default:
				found = pick(ignoreCase, stringx.ContainsIgnoreCase, stringx.Contains)(text, contains)
			}

			if err := a.println(boolText(found)); err != nil {
				return err
			}
			if !found {
				return errNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "text must begin with pattern")
	cmd.Flags().StringVar(&suffix, "suffix", "", "text must end with pattern")
	cmd.Flags().StringVar(&contains, "contains", "", "text must contain pattern")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ASCII case-insensitive match")
	cmd.MarkFlagsMutuallyExclusive("prefix", "suffix", "contains")
	cmd.MarkFlagsOneRequired("prefix", "suffix", "contains")
	return cmd
}

func pick(ignoreCase bool, folded, exact func(string, string) bool) func(string, string) bool {
	if ignoreCase {
		return folded
	}
	return exact
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
