package cmd

import (
	"io"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

// inputText returns the arguments joined by a space, or stdin when there are none
func (a *app) inputText(args []string) (string, error) {
	if len(args) > 0 {
		return stringx.Join(args, " "), nil
	}

	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stdin").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cli.input")
	}
	return dropTrailingNewline(string(data)), nil
}

func dropTrailingNewline(s string) string {
	switch {
	case stringx.EndsWith(s, "\r\n"):
		return s[:len(s)-2]
	case stringx.EndsWith(s, "\n"):
		return s[:len(s)-1]
	}
	return s
}

func (a *app) println(s string) error {
	_, err := io.WriteString(a.out, s+"\n")
	return err
}
