package playground

import (
	"errors"
	"fmt"
	"strconv"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	"github.com/msto63/strutil/foundation/utils/parsex"
	"github.com/msto63/strutil/foundation/utils/stringx"
	"github.com/msto63/strutil/foundation/utils/urlx"
)

// Transform is one row of the playground output
type Transform struct {
	Name  string
	Value string
	Err   bool
}

// Render applies every transformation to input. It has no side effects so
// the view can be tested without a terminal.
func Render(input string, policy urlx.Policy, delimiter string) []Transform {
	out := []Transform{
		{Name: "lower", Value: stringx.ToLower(input)},
		{Name: "upper", Value: stringx.ToUpper(input)},
		{Name: "title", Value: stringx.ToTitleCase(input)},
		{Name: "snake", Value: stringx.ToSnakeCase(input)},
		{Name: "camel", Value: stringx.ToCamelCase(input)},
		{Name: "trim", Value: strconv.Quote(stringx.Trim(input))},
		{Name: fmt.Sprintf("split %q", delimiter), Value: fmt.Sprintf("%q", stringx.Split(input, delimiter))},
		{Name: fmt.Sprintf("encode (%s)", policy), Value: urlx.Encode(input, policy)},
	}

	decoded, err := urlx.Decode(input)
	out = append(out, result("decode", strconv.Quote(decoded), err))

	i, err := parsex.To[int64](input)
	out = append(out, result("int", strconv.FormatInt(i, 10), err))

	f, err := parsex.To[float64](input)
	out = append(out, result("float", strconv.FormatFloat(f, 'g', -1, 64), err))

	b, err := parsex.To[bool](input)
	out = append(out, result("bool", strconv.FormatBool(b), err))

	out = append(out, Transform{Name: "unixpath", Value: stringx.ToUnixPath(input)})
	return out
}

func result(name, value string, err error) Transform {
	if err != nil {
		return Transform{Name: name, Value: describe(err), Err: true}
	}
	return Transform{Name: name, Value: value}
}

// describe returns the message of a structured error without its sentinel cause
func describe(err error) string {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Message()
	}
	return err.Error()
}

// nameWidth returns the widest transform name
func nameWidth(rows []Transform) int {
	w := 0
	for _, r := range rows {
		if len(r.Name) > w {
			w = len(r.Name)
		}
	}
	return w
}
