package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lambda-feedback/simpleweb/util/logging"
)

func TestNamedLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	log := logging.NamedLogger("serve", zap.String("component", "test"))(zap.New(core))
	log.Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "serve", entries[0].LoggerName)
	assert.Equal(t, "test", entries[0].ContextMap()["component"])
}
