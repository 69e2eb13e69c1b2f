package config

import (
	_ "embed"

	"github.com/lambda-feedback/simpleweb/internal/server"
	"github.com/lambda-feedback/simpleweb/util"
	"github.com/lambda-feedback/simpleweb/util/conf"
)

// EnvPrefix is the prefix of env vars and dotenv keys read into
// the configuration, e.g. SIMPLEWEB_HTTP__PORT.
const EnvPrefix = "SIMPLEWEB_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Http is the configuration of the standalone http server
	Http server.HttpConfig `conf:"http"`
}

var DefaultConfig = conf.MergeDefaults(
	conf.DefaultConfig{
		"log_level":  "info",
		"log_format": "production",
	},
	conf.Namespaced("http", server.DefaultConfig),
)

// CliMap maps the http flags onto their nested config keys.
var CliMap = map[string]string{
	"host": "http.host",
	"port": "http.port",
	"h2c":  "http.h2c",
}

//go:embed schema.json
var schemaDocument []byte

// Schema validates configuration files.
var Schema = util.Must(conf.NewSchema(schemaDocument))
