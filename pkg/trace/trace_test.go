package trace_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/trace"
)

func TestTraceLogsInfoWhenSatisfied(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	tracer := trace.NewLogger(logger)

	tracer.Trace(ghost.RunSummary{RunID: "r1", Satisfied: true, Iterations: 3})

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "r1", hook.LastEntry().Data["run_id"])
}

func TestTraceLogsWarnWhenNotSatisfied(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	tracer := trace.NewLogger(logger)

	tracer.Trace(ghost.RunSummary{RunID: "r2", Satisfied: false})

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestNewLoggerWithFieldsCarriesExtraFields(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	tracer := trace.NewLoggerWithFields(logger, logrus.Fields{"scenario": "knapsack"})

	tracer.Trace(ghost.RunSummary{RunID: "r3", Satisfied: true})

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "knapsack", hook.LastEntry().Data["scenario"])
}
