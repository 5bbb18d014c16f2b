// Package metrics records solve timings and answers in a private Prometheus
// registry that is dumped to a node_exporter textfile after a run.
// Package metrics 在私有 Prometheus 注册表中记录求解耗时与答案，运行结束后写出 textfile。
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the advent metrics around one registry.
type Collector struct {
	registry *prometheus.Registry

	// Solve metrics
	SolveDuration *prometheus.HistogramVec
	Answer        *prometheus.GaugeVec

	// Expectation metrics
	ExpectationFailures prometheus.Counter

	// Stream metrics
	StreamTokens prometheus.Counter
}

// NewCollector creates a Collector with its own registry so repeated runs
// in one process (tests) never collide on registration.
// NewCollector 创建带独立注册表的 Collector。
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		SolveDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advent_solve_duration_seconds",
				Help:    "Time spent solving one part of a puzzle",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"year", "day", "part"},
		),
		Answer: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "advent_answer",
				Help: "Last computed answer of a puzzle part",
			},
			[]string{"year", "day", "part"},
		),
		ExpectationFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "advent_expectation_failures_total",
				Help: "Total number of failed answer expectations",
			},
		),
		StreamTokens: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "advent_stream_tokens_total",
				Help: "Total number of tokens emitted by the split command",
			},
		),
	}
}

// ObserveSolve records one solved part.
// ObserveSolve 记录一个已求解的部分。
func (c *Collector) ObserveSolve(year, day, part int, answer int64, elapsed time.Duration) {
	labels := prometheus.Labels{
		"year": strconv.Itoa(year),
		"day":  strconv.Itoa(day),
		"part": strconv.Itoa(part),
	}
	c.SolveDuration.With(labels).Observe(elapsed.Seconds())
	c.Answer.With(labels).Set(float64(answer))
}

// WriteTextfile dumps the registry in the text exposition format.
// WriteTextfile 以文本格式写出注册表。
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
