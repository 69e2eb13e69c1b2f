package cliflags_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/simpleweb/util/cliflags"
)

func readFlags(t *testing.T, flags []cli.Flag, args ...string) map[string]any {
	var mp map[string]any

	app := &cli.App{
		Name:  "test",
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			transform := func(s string) string {
				return strings.ReplaceAll(s, "-", ".")
			}

			var err error
			mp, err = cliflags.Provider(ctx, ".", transform).Read()
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))

	return mp
}

func TestProvider_SetFlags(t *testing.T) {
	mp := readFlags(t, []cli.Flag{
		&cli.IntFlag{Name: "http-port", Value: 8080},
		&cli.StringFlag{Name: "name"},
		&cli.BoolFlag{Name: "verbose"},
	}, "--http-port", "9000", "--verbose")

	assert.Equal(t, map[string]any{
		"http":    map[string]any{"port": 9000},
		"verbose": true,
	}, mp)
}

func TestProvider_EnvFlags(t *testing.T) {
	t.Setenv("CLIFLAGS_TEST_NAME", "from-env")

	mp := readFlags(t, []cli.Flag{
		&cli.StringFlag{Name: "name", EnvVars: []string{"CLIFLAGS_TEST_NAME"}},
	})

	assert.Equal(t, map[string]any{"name": "from-env"}, mp)
}

func TestProvider_UnsetFlags(t *testing.T) {
	mp := readFlags(t, []cli.Flag{
		&cli.IntFlag{Name: "port", Value: 8080},
	})

	assert.Empty(t, mp)
}

func TestProvider_ReadBytes(t *testing.T) {
	var provider *cliflags.CLIFlags

	app := &cli.App{
		Name: "test",
		Action: func(ctx *cli.Context) error {
			provider = cliflags.Provider(ctx, "", nil)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"test"}))

	_, err := provider.ReadBytes()
	assert.Error(t, err)
}

func readCommandFlags(t *testing.T, args ...string) map[string]any {
	var mp map[string]any

	port := &cli.IntFlag{Name: "port", Value: 8080}

	app := &cli.App{
		Name:  "test",
		Flags: []cli.Flag{port},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Flags: []cli.Flag{port},
				Action: func(ctx *cli.Context) error {
					var err error
					mp, err = cliflags.Provider(ctx, ".", nil).Read()
					return err
				},
			},
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))

	return mp
}

func TestProvider_ParentFlagShared(t *testing.T) {
	mp := readCommandFlags(t, "--port", "9000", "serve")
	assert.Equal(t, map[string]any{"port": 9000}, mp)
}

func TestProvider_CommandFlagShared(t *testing.T) {
	mp := readCommandFlags(t, "serve", "--port", "9001")
	assert.Equal(t, map[string]any{"port": 9001}, mp)
}

func TestProvider_CommandFlagOverridesParent(t *testing.T) {
	mp := readCommandFlags(t, "--port", "9000", "serve", "--port", "9001")
	assert.Equal(t, map[string]any{"port": 9001}, mp)
}
