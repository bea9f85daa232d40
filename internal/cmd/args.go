package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// limitsValue is a pflag.Value holding zero or more floats. It stays nil until
// the flag is given, so an absent flag and an empty list are distinguishable.
type limitsValue struct {
	values []float64
}

var _ pflag.Value = (*limitsValue)(nil)

func (l *limitsValue) String() string {
	parts := make([]string, len(l.values))
	for i, v := range l.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *limitsValue) Set(s string) error {
	values := []float64{}
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("parse limit %q: %w", part, err)
		}
		values = append(values, v)
	}
	l.values = values
	return nil
}

func (l *limitsValue) Type() string {
	return "floats"
}

// Raw returns the parsed values, or nil when the flag was not given.
func (l *limitsValue) Raw() []float64 {
	return l.values
}

// normalizeArgs rewrites the single-dash long flags of the original command
// line (-mjd T, -xlimits 0 2) into the form pflag parses. Limit flags swallow
// every following argument that parses as a float.
func normalizeArgs(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, value, hasValue := splitFlag(arg)
		if name == "" || len(name) == 1 {
			out = append(out, arg)
			continue
		}
		flag := fs.Lookup(name)
		if flag == nil {
			out = append(out, arg)
			continue
		}

		if _, ok := flag.Value.(*limitsValue); !ok {
			if hasValue {
				out = append(out, "--"+name+"="+value)
			} else {
				out = append(out, "--"+name)
			}
			continue
		}

		var values []string
		if hasValue {
			values = append(values, value)
		}
		for i+1 < len(args) && isFloat(args[i+1]) {
			values = append(values, args[i+1])
			i++
		}
		out = append(out, "--"+name+"="+strings.Join(values, ","))
	}
	return out
}

// splitFlag returns the flag name of a -name, --name or -name=value argument.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return "", "", false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, value, hasValue = strings.Cut(name, "=")
	return name, value, hasValue
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
