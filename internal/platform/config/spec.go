package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

type mode int

const (
	required mode = iota
	optionalWithDefault
	optionalNoDefault
)

// Field is the untyped view of a Var, enough for the validator to walk the
// table without knowing each variable's value type.
type Field interface {
	Name() string
	check(src Source) (value any, set bool, err *FieldError)
}

// Var describes one recognized environment variable with values of type T.
// The default is typed, so a default that does not satisfy the declared kind
// is a compile error rather than a runtime surprise.
type Var[T any] struct {
	name      string
	mode      mode
	def       T
	parse     func(string) (T, error)
	transform func(T) T
}

func (v Var[T]) Name() string { return v.name }

func (v Var[T]) check(src Source) (any, bool, *FieldError) {
	raw, ok := src.Lookup(v.name)
	if !ok {
		switch v.mode {
		case required:
			return nil, false, &FieldError{Path: v.name, Message: "missing required variable"}
		case optionalWithDefault:
			return v.def, true, nil
		default:
			return nil, false, nil
		}
	}

	val, err := v.parse(raw)
	if err != nil {
		return nil, false, &FieldError{Path: v.name, Message: err.Error()}
	}
	if v.transform != nil {
		val = v.transform(val)
	}
	return val, true, nil
}

// Get returns the variable's value from a successful validation pass. For an
// optional variable without a default that was absent, it returns the zero
// value; use Lookup to tell the two apart.
func (v Var[T]) Get(p Parsed) T {
	val, ok := v.Lookup(p)
	if !ok {
		var zero T
		return zero
	}
	return val
}

// Lookup returns the variable's value and whether it was set or defaulted.
func (v Var[T]) Lookup(p Parsed) (T, bool) {
	val, ok := p.values[v.name]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

func parseString(raw string) (string, error) { return raw, nil }

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be a base-10 integer, got %q", raw)
	}
	return n, nil
}

// parseBool treats exactly the literal "true" as true. "TRUE", "1", "yes"
// and everything else are false, never an error. Intentional; do not loosen
// into case-insensitive truthy parsing.
func parseBool(raw string) (bool, error) {
	return raw == "true", nil
}

// String declares an optional string variable with a default. Values are
// trimmed of surrounding whitespace.
func String(name, def string) Var[string] {
	return Var[string]{name: name, mode: optionalWithDefault, def: def, parse: parseString, transform: strings.TrimSpace}
}

// OptionalString declares a string variable that may be absent. Absence is
// not an error and yields no value.
func OptionalString(name string) Var[string] {
	return Var[string]{name: name, mode: optionalNoDefault, parse: parseString, transform: strings.TrimSpace}
}

// RequiredString declares a string variable whose absence fails validation.
func RequiredString(name string) Var[string] {
	return Var[string]{name: name, mode: required, parse: parseString, transform: strings.TrimSpace}
}

// Int declares an optional base-10 integer variable with a default.
func Int(name string, def int) Var[int] {
	return Var[int]{name: name, mode: optionalWithDefault, def: def, parse: parseInt}
}

// RequiredInt declares an integer variable whose absence fails validation.
func RequiredInt(name string) Var[int] {
	return Var[int]{name: name, mode: required, parse: parseInt}
}

// Bool declares an optional boolean variable with a default. Only the exact
// literal "true" parses to true.
func Bool(name string, def bool) Var[bool] {
	return Var[bool]{name: name, mode: optionalWithDefault, def: def, parse: parseBool}
}

// Enum declares an optional string variable restricted to the given options,
// matched case-sensitively. Panics if the default is not an option: the
// table is authored once, so a bad default is a programming error, not a
// deployment error.
func Enum(name, def string, options ...string) Var[string] {
	if !slices.Contains(options, def) {
		panic(fmt.Sprintf("config: default %q for %s is not one of %v", def, name, options))
	}
	parse := func(raw string) (string, error) {
		if !slices.Contains(options, raw) {
			return "", fmt.Errorf("must be one of %v, got %q", options, raw)
		}
		return raw, nil
	}
	return Var[string]{name: name, mode: optionalWithDefault, def: def, parse: parse}
}

// DurationMS declares an optional duration variable whose raw value is a
// plain base-10 millisecond count. No unit suffixes.
func DurationMS(name string, def time.Duration) Var[time.Duration] {
	parse := func(raw string) (time.Duration, error) {
		n, err := parseInt(raw)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * time.Millisecond, nil
	}
	return Var[time.Duration]{name: name, mode: optionalWithDefault, def: def, parse: parse}
}
