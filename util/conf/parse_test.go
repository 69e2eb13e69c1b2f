package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/simpleweb/util/conf"
)

type testHttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
}

type testConfig struct {
	Name string         `conf:"name"`
	Http testHttpConfig `conf:"http"`
}

var testDefaults = conf.MergeDefaults(
	conf.DefaultConfig{"name": "default"},
	conf.Namespaced("http", conf.DefaultConfig{"host": "", "port": 8080}),
)

const testSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string"},
		"http": {
			"type": "object",
			"properties": {
				"host": {"type": "string"},
				"port": {"type": ["integer", "string"]}
			}
		}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_",
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, "", cfg.Http.Host)
	assert.Equal(t, 8080, cfg.Http.Port)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("CONFTEST_NAME", "env")
	t.Setenv("CONFTEST_HTTP__PORT", "9090")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_",
	})
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Name)
	assert.Equal(t, 9090, cfg.Http.Port)
}

func TestParse_JsonFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "file", "http": {"port": 7070}}`)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_",
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Name)
	assert.Equal(t, 7070, cfg.Http.Port)
}

func TestParse_DotenvFile(t *testing.T) {
	path := writeFile(t, "config.env", "CONFTEST_HTTP__HOST=127.0.0.1\nCONFTEST_HTTP__PORT=6060\nUNRELATED=1\n")

	schema, err := conf.NewSchema([]byte(testSchema))
	require.NoError(t, err)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_",
		FileName:  path,
		Schema:    schema,
	})
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, "127.0.0.1", cfg.Http.Host)
	assert.Equal(t, 6060, cfg.Http.Port)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"http": {"port": 7070}}`)
	t.Setenv("CONFTEST_HTTP__PORT", "9090")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_",
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Http.Port)
}

func TestParse_FailsMissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		FileName: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestParse_FailsSchemaViolation(t *testing.T) {
	path := writeFile(t, "config.json", `{"nmae": "typo"}`)

	schema, err := conf.NewSchema([]byte(testSchema))
	require.NoError(t, err)

	_, err = conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		FileName: path,
		Schema:   schema,
	})

	var validationErr *conf.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Violations)
}

func TestParse_CliOverridesEnv(t *testing.T) {
	t.Setenv("CONFTEST_HTTP__PORT", "9090")

	var cfg testConfig

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 1234},
			&cli.StringFlag{Name: "name", Value: "flag-default"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = conf.Parse[testConfig](conf.ParseOptions{
				Cli:       ctx,
				CliMap:    map[string]string{"port": "http.port"},
				Defaults:  testDefaults,
				EnvPrefix: "CONFTEST_",
			})
			return err
		},
	}

	require.NoError(t, app.Run([]string{"test", "--port", "5050"}))

	assert.Equal(t, 5050, cfg.Http.Port)
	// unset flags do not shadow defaults
	assert.Equal(t, "default", cfg.Name)
}
