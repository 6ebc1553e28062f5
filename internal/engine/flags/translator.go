// Package flags translates task run options into interpreter command-line flags.
package flags

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/zerr"
)

// valueKind is a bit set of the value types a flag accepts.
type valueKind uint8

const (
	kindBool valueKind = 1 << iota
	kindList
	kindString
	kindNumber
)

func (k valueKind) String() string {
	var names []string
	if k&kindBool != 0 {
		names = append(names, "bool")
	}
	if k&kindList != 0 {
		names = append(names, "list")
	}
	if k&kindString != 0 {
		names = append(names, "string")
	}
	if k&kindNumber != 0 {
		names = append(names, "number")
	}
	return strings.Join(names, " or ")
}

// knownFlags maps canonical option names to the values their flag accepts.
var knownFlags = map[string]valueKind{
	"allow-all":    kindBool,
	"allow-env":    kindBool | kindList,
	"allow-net":    kindBool | kindList,
	"allow-read":   kindBool | kindList,
	"allow-write":  kindBool | kindList,
	"allow-run":    kindBool | kindList,
	"allow-ffi":    kindBool | kindList,
	"allow-sys":    kindBool | kindList,
	"allow-hrtime": kindBool,
	"allow-plugin": kindBool,
	"cached-only":  kindBool,
	"lock-write":   kindBool,
	"no-check":     kindBool,
	"no-remote":    kindBool,
	"no-prompt":    kindBool,
	"quiet":        kindBool,
	"unstable":     kindBool,
	"reload":       kindBool | kindList,
	"inspect":      kindBool | kindString,
	"inspect-brk":  kindBool | kindString,
	"cert":         kindString,
	"config":       kindString,
	"import-map":   kindString,
	"lock":         kindString,
	"log-level":    kindString,
	"location":     kindString,
	"seed":         kindNumber,
	"v8-flags":     kindList,
}

// Translator implements ports.FlagTranslator for deno-style "run" flags.
type Translator struct{}

// NewTranslator creates a new Translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the flags for opts, sorted by flag name.
// Option names may use snake_case or kebab-case. A false value omits the flag.
func (t *Translator) Translate(opts domain.Options) ([]string, error) {
	names := make([]string, 0, len(opts))
	byName := make(map[string]string, len(opts))

	for key := range opts {
		name := canonicalName(key)
		if _, ok := knownFlags[name]; !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownOption, "cannot translate run options"), "option", key)
		}
		if prev, dup := byName[name]; dup {
			first, second := prev, key
			if second < first {
				first, second = second, first
			}
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidOptionValue, fmt.Sprintf("%q and %q name the same flag", first, second)),
				"option", name)
		}
		byName[name] = key
		names = append(names, name)
	}
	slices.Sort(names)

	flags := make([]string, 0, len(names))
	for _, name := range names {
		key := byName[name]
		flag, ok, err := render(name, knownFlags[name], opts[key])
		if err != nil {
			return nil, zerr.With(zerr.With(err, "option", key), "expected", knownFlags[name].String())
		}
		if ok {
			flags = append(flags, flag)
		}
	}
	return flags, nil
}

func canonicalName(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "_", "-"))
}

// render returns the flag for a single option, or false when the option is switched off.
func render(name string, kind valueKind, value any) (string, bool, error) {
	flag := "--" + name

	switch v := value.(type) {
	case bool:
		if kind&kindBool == 0 {
			return "", false, invalid(value)
		}
		return flag, v, nil
	case string:
		if kind&kindString == 0 || v == "" {
			return "", false, invalid(value)
		}
		return flag + "=" + v, true, nil
	case []any, []string:
		if kind&kindList == 0 {
			return "", false, invalid(value)
		}
		items, err := listItems(v)
		if err != nil {
			return "", false, err
		}
		if len(items) == 0 {
			return "", false, nil
		}
		return flag + "=" + strings.Join(items, ","), true, nil
	case nil:
		return "", false, invalid(value)
	default:
		if kind&kindNumber == 0 {
			return "", false, invalid(value)
		}
		n, ok := number(v)
		if !ok {
			return "", false, invalid(value)
		}
		return flag + "=" + n, true, nil
	}
}

func listItems(list any) ([]string, error) {
	if strs, ok := list.([]string); ok {
		return strs, nil
	}

	raw, _ := list.([]any)
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if v == "" {
				return nil, invalid(list)
			}
			items = append(items, v)
		default:
			n, ok := number(v)
			if !ok {
				return nil, invalid(list)
			}
			items = append(items, n)
		}
	}
	return items, nil
}

func number(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}

func invalid(value any) error {
	return zerr.With(
		zerr.Wrap(domain.ErrInvalidOptionValue, "cannot translate run options"),
		"value", fmt.Sprintf("%v", value))
}
