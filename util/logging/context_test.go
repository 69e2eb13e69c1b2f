package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/simpleweb/util/logging"
)

func TestLoggerFromContext(t *testing.T) {
	log := zaptest.NewLogger(t)

	ctx := logging.ContextWithLogger(context.Background(), log)

	actual, err := logging.LoggerFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, actual)
}

func TestLoggerFromContext_Missing(t *testing.T) {
	_, err := logging.LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, logging.ErrNoLoggerInContext)
}
