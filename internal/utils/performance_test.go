package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationTimer_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	stop := OperationTimer("fetch_advisors", log, time.Hour)
	d := stop()

	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Contains(t, buf.String(), "fetch_advisors")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.NotContains(t, buf.String(), "Slow operation detected")
}

func TestOperationTimer_WarnsWhenSlow(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	stop := OperationTimer("fetch_holdings", log, time.Nanosecond)
	time.Sleep(time.Millisecond)
	stop()

	assert.Contains(t, buf.String(), "Slow operation detected")
}
