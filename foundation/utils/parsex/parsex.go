// File: parsex.go
// Title: Generic Text-to-Value Conversion
// Description: To, Parse and MustTo over the closed set of Parseable types,
//              plus ToKind for callers that only know the type by name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parsex

import (
	"errors"
	"fmt"
	"strconv"

	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

// Parseable is the closed set of types To can produce.
type Parseable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		bool | string
}

// ErrCannotParse is the cause of every conversion failure. Match it with errors.Is.
var ErrCannotParse = errors.New("cannot parse")

var (
	errExplicitPlus = errors.New("explicit '+' sign is not accepted")
	errBoolWord     = errors.New("expected one of 1, true, on, yes, 0, false, off, no")
)

// To converts s to T. On failure it returns the zero value of T and an
// error wrapping ErrCannotParse.
func To[T Parseable](s string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *int:
		var v int64
		v, err = parseInt(s, strconv.IntSize)
		*p = int(v)
	case *int8:
		var v int64
		v, err = parseInt(s, 8)
		*p = int8(v)
	case *int16:
		var v int64
		v, err = parseInt(s, 16)
		*p = int16(v)
	case *int32:
		var v int64
		v, err = parseInt(s, 32)
		*p = int32(v)
	case *int64:
		*p, err = parseInt(s, 64)
	case *uint:
		var v uint64
		v, err = parseUint(s, strconv.IntSize)
		*p = uint(v)
	case *uint8:
		var v uint64
		v, err = parseUint(s, 8)
		*p = uint8(v)
	case *uint16:
		var v uint64
		v, err = parseUint(s, 16)
		*p = uint16(v)
	case *uint32:
		var v uint64
		v, err = parseUint(s, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = parseUint(s, 64)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(s, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *bool:
		*p, err = parseBool(s)
	case *string:
		*p = s
	}

	if err != nil {
		var zero T
		return zero, mdwerrors.ParsexCannotParse(fmt.Sprintf("%T", zero), s, err, ErrCannotParse)
	}
	return out, nil
}

func parseInt(s string, bits int) (int64, error) {
	if stringx.BeginsWith(s, "+") {
		return 0, errExplicitPlus
	}
	return strconv.ParseInt(s, 10, bits)
}

func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 10, bits)
}

func parseBool(s string) (bool, error) {
	switch s {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	}
	return false, errBoolWord
}

// Result holds the outcome of Parse. Value is the zero value whenever Err is set.
type Result[T Parseable] struct {
	Value T
	Err   error
}

// OK reports whether the conversion succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Or returns Value on success and fallback otherwise
func (r Result[T]) Or(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Parse is To returning a Result
func Parse[T Parseable](s string) Result[T] {
	v, err := To[T](s)
	return Result[T]{Value: v, Err: err}
}

// MustTo is To that panics on failure. Use it for literals known to be valid.
func MustTo[T Parseable](s string) T {
	v, err := To[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Kinds lists the type names accepted by ToKind
func Kinds() []string {
	return []string{
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float", "float32", "float64",
		"bool", "string",
	}
}

// ToKind converts s to the type named by kind and returns it boxed.
// "float" is an alias for float64. An unknown kind is an invalid-input error.
func ToKind(kind, s string) (interface{}, error) {
	switch stringx.ToLower(kind) {
	case "int":
		return boxed(To[int](s))
	case "int8":
		return boxed(To[int8](s))
	case "int16":
		return boxed(To[int16](s))
	case "int32":
		return boxed(To[int32](s))
	case "int64":
		return boxed(To[int64](s))
	case "uint":
		return boxed(To[uint](s))
	case "uint8":
		return boxed(To[uint8](s))
	case "uint16":
		return boxed(To[uint16](s))
	case "uint32":
		return boxed(To[uint32](s))
	case "uint64":
		return boxed(To[uint64](s))
	case "float", "float64":
		return boxed(To[float64](s))
	case "float32":
		return boxed(To[float32](s))
	case "bool":
		return boxed(To[bool](s))
	case "string":
		return s, nil
	}
	return nil, mdwerrors.InvalidInput(mdwerrors.ModuleParsex, "to_kind", kind, stringx.Join(Kinds(), ", "))
}

func boxed[T Parseable](v T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
