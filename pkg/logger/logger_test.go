package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit/pkg/logger"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	lg, err := logger.New().FromBuffer(buff).Make()
	require.NoError(t, err)
	require.NotNil(t, lg)

	require.Equal(t, 0, buff.Len())
	lg.Logger.Info().Msg("Test")
	require.Contains(t, buff.String(), "Test")
}

func TestLogLevel(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	lg, err := logger.New().FromBuffer(buff).Level("warn").Make()
	require.NoError(t, err)

	lg.Logger.Info().Msg("hidden")
	require.Equal(t, 0, buff.Len())

	lg.Logger.Warn().Msg("shown")
	require.Contains(t, buff.String(), "shown")
}

func TestLogBadLevel(t *testing.T) {
	_, err := logger.New().Level("loud").Make()
	require.Error(t, err)
}
