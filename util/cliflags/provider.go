// Package cliflags implements a koanf.Provider that takes a
// cli.Context and provides its explicitly set flags to koanf.
package cliflags

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/maps"
	"github.com/urfave/cli/v2"
)

// CLIFlags implements a raw map[string]any provider.
type CLIFlags struct {
	mp map[string]any
}

// Provider returns a CLI Provider that takes a CLI context.
// Only flags set on the command line or through their env vars
// are provided, so flag defaults never shadow other sources.
// Flags are resolved on every level of the command lineage, a
// value set on a subcommand overriding one set on its parents.
// If a delim is provided, the keys returned by cb are unflattened
// by delim.
func Provider(ctx *cli.Context, delim string, cb func(string) string) *CLIFlags {
	mp := make(map[string]any)

	lineage := ctx.Lineage()

	// walk from the root-level context down to ctx
	for i := len(lineage) - 1; i >= 0; i-- {
		level := lineage[i]

		for name, flag := range visibleFlags(level) {
			if !level.IsSet(name) {
				continue
			}

			value, err := getFlagValue(level, flag)
			if err != nil {
				continue
			}

			var mapName = name
			if cb != nil {
				mapName = cb(name)
			}
			mp[mapName] = value
		}
	}

	// this happens when `cb` returns a nested key
	if delim != "" {
		mp = maps.Unflatten(mp, delim)
	}

	return &CLIFlags{mp: mp}
}

// ReadBytes is not supported by the cli provider.
func (e *CLIFlags) ReadBytes() ([]byte, error) {
	return nil, errors.New("cli provider does not support this method")
}

// Read returns the loaded map[string]any.
func (e *CLIFlags) Read() (map[string]any, error) {
	return e.mp, nil
}

// visibleFlags returns the flags of the root-level app and of the
// command running at the given level, keyed by their primary name.
func visibleFlags(ctx *cli.Context) map[string]cli.Flag {
	flags := map[string]cli.Flag{}

	if ctx.App != nil {
		for _, flag := range ctx.App.VisibleFlags() {
			flags[flag.Names()[0]] = flag
		}
	}

	if ctx.Command != nil {
		for _, flag := range ctx.Command.VisibleFlags() {
			flags[flag.Names()[0]] = flag
		}
	}

	return flags
}

func getFlagValue(ctx *cli.Context, flag cli.Flag) (any, error) {
	name := flag.Names()[0]

	switch flag.(type) {
	case *cli.StringFlag:
		return ctx.String(name), nil
	case *cli.StringSliceFlag:
		return ctx.StringSlice(name), nil
	case *cli.PathFlag:
		return ctx.Path(name), nil
	case *cli.IntFlag:
		return ctx.Int(name), nil
	case *cli.IntSliceFlag:
		return ctx.IntSlice(name), nil
	case *cli.Int64Flag:
		return ctx.Int64(name), nil
	case *cli.Int64SliceFlag:
		return ctx.Int64Slice(name), nil
	case *cli.BoolFlag:
		return ctx.Bool(name), nil
	case *cli.Float64Flag:
		return ctx.Float64(name), nil
	case *cli.Float64SliceFlag:
		return ctx.Float64Slice(name), nil
	case *cli.DurationFlag:
		return ctx.Duration(name), nil
	}

	return nil, fmt.Errorf("unsupported flag type %T", flag)
}
