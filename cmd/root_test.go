package cmd

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
)

// countingSyncer records how often the logger flushed.
type countingSyncer struct {
	bytes.Buffer
	syncs int
}

func (c *countingSyncer) Sync() error {
	c.syncs++
	return nil
}

func TestHandleFlushesLogBeforeExit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantSync int
	}{
		{"nil", nil, -1, 0},
		{"persistence warns", apperrors.Wrap(errors.New("disk full"), apperrors.ErrPersistence.Code, apperrors.ErrPersistence.Message), -1, 0},
		{"user error", apperrors.Clone(apperrors.ErrValidation, "bad input"), 1, 1},
		{"environment error", errors.New("permission denied"), 2, 1},
	}
	for _, tt := range tests {
		sink := &countingSyncer{}
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.DebugLevel)

		oldLog, oldExit := log, osExit
		code := -1
		log = zap.New(core)
		osExit = func(c int) { code = c }

		handle(tt.err)

		log, osExit = oldLog, oldExit
		if code != tt.wantCode {
			t.Errorf("%s: exit code = %d, want %d", tt.name, code, tt.wantCode)
		}
		if sink.syncs != tt.wantSync {
			t.Errorf("%s: log synced %d times, want %d", tt.name, sink.syncs, tt.wantSync)
		}
	}
}
