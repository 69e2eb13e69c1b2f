package conf

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lambda-feedback/simpleweb/util/cliflags"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// DefaultConfig holds flat, dot-delimited default values.
type DefaultConfig map[string]any

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// FileName is the name of the configuration file to load.
	// Files ending in .env are parsed as dotenv, the rest as json.
	FileName string

	// Schema is an optional json schema the configuration file
	// has to satisfy
	Schema *Schema

	// Log is the logger to use
	Log *zap.Logger
}

// Parse resolves a configuration of type C. Sources are applied in
// order defaults, file, env, cli flags, later sources overriding
// earlier ones.
func Parse[C any](opt ParseOptions) (C, error) {
	var config C

	var log *zap.Logger
	if opt.Log != nil {
		log = opt.Log
	} else {
		log = zap.NewNop()
	}

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		values, err := loadFile(opt.FileName, opt.EnvPrefix)
		if err != nil {
			log.Error("error parsing file",
				zap.Error(err),
				zap.String("file", opt.FileName),
			)
			return config, err
		}

		if opt.Schema != nil {
			if err := opt.Schema.Validate(values); err != nil {
				log.Error("invalid config file",
					zap.Error(err),
					zap.String("file", opt.FileName),
				)
				return config, err
			}
		}

		if err := k.Load(confmap.Provider(values, ""), nil); err != nil {
			log.Error("error loading file", zap.Error(err))
			return config, err
		}
	}

	transformPrefixedEnv := func(s string) string {
		return transformEnv(s, opt.EnvPrefix)
	}

	if err := k.Load(env.Provider(opt.EnvPrefix, ".", transformPrefixedEnv), nil); err != nil {
		log.Error("error parsing env vars", zap.Error(err))
		return config, err
	}

	if opt.Cli != nil {
		transformFlag := func(s string) string {
			if opt.CliMap != nil {
				if name, ok := opt.CliMap[s]; ok {
					return name
				}
			}

			// replace - with _
			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	return config, nil
}

func loadFile(name, prefix string) (map[string]any, error) {
	b, err := file.Provider(name).ReadBytes()
	if err != nil {
		return nil, err
	}

	if filepath.Ext(name) != ".env" {
		return json.Parser().Unmarshal(b)
	}

	raw, err := dotenv.Parser().Unmarshal(b)
	if err != nil {
		return nil, err
	}

	// dotenv keys follow the env var naming, so they are filtered
	// and transformed the same way
	values := make(map[string]any, len(raw))
	for key, val := range raw {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		values[transformEnv(key, prefix)] = val
	}

	return maps.Unflatten(values, "."), nil
}

func transformEnv(s, prefix string) string {
	// pop prefix if it is set
	trimmed := strings.TrimPrefix(s, prefix)
	// allow specifying nested env vars w/ __
	return strings.ReplaceAll(strings.ToLower(trimmed), "__", ".")
}
