package testlog

import (
	"testing"

	"github.com/danmuck/usefulgo/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logger := logging.Logger("test")
	logger.Info().Str("test", t.Name()).Msg("start")
}
