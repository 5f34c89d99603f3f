// Package flagx lets several flag sets share one command line. Each consumer
// picks out only the flags it owns, so the -c config flag, the server flags
// and positional subcommands such as "token <owner>" do not trip over each
// other.
package flagx

import (
	"flag"
	"strconv"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values, in their original order. Names in allowed are written with a single
// dash; "--name" on the command line matches them too, as it does for the
// flag package.
//
// Supported forms:
//
//	-c conf.toml     --c conf.toml
//	-c=conf.toml     --config=conf.toml
//
// A following argument is taken as the value unless it looks like a flag
// itself. Negative numbers count as values. Parsing stops at "--".
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[normalize(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !looksLikeFlag(arg) {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if _, ok := names[normalize(name)]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !looksLikeFlag(args[i+1]) && args[i+1] != "--" {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func normalize(name string) string {
	return "-" + strings.TrimLeft(name, "-")
}

func looksLikeFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	return true
}

// ConfigFileFlag returns the config file path given in args via -c or
// -config, or "" when neither is present. Other arguments are ignored.
func ConfigFileFlag(args []string) string {
	var config string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}
