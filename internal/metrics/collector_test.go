package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveSolve(t *testing.T) {
	c := NewCollector()
	c.ObserveSolve(2024, 1, 1, 11, 5*time.Millisecond)
	c.ObserveSolve(2024, 1, 2, 31, 7*time.Millisecond)

	assert.Equal(t, 11.0, testutil.ToFloat64(c.Answer.WithLabelValues("2024", "1", "1")))
	assert.Equal(t, 31.0, testutil.ToFloat64(c.Answer.WithLabelValues("2024", "1", "2")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.SolveDuration))
}

func TestCollector_Independent(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	a.ExpectationFailures.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.ExpectationFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ExpectationFailures))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.StreamTokens.Add(3)
	c.ObserveSolve(2025, 1, 1, 3, time.Millisecond)

	path := filepath.Join(t.TempDir(), "advent.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, "advent_stream_tokens_total 3"), text)
	assert.True(t, strings.Contains(text, `advent_answer{day="1",part="1",year="2025"} 3`), text)
}
