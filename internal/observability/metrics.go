package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	cliCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usefulgo",
			Subsystem: "cli",
			Name:      "commands_total",
			Help:      "usefulctl command invocations by outcome.",
		},
		[]string{"command", "status"},
	)
	dumpElements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usefulgo",
			Subsystem: "dump",
			Name:      "elements_total",
			Help:      "Elements written by memory dumps.",
		},
		[]string{"mode"},
	)
	fatalExits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usefulgo",
			Subsystem: "diag",
			Name:      "fatal_exits_total",
			Help:      "Process exits routed through the fatal error reporter.",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		registry.MustRegister(cliCommands, dumpElements, fatalExits)
	})
}

// Gatherer exposes the package registry.
func Gatherer() prometheus.Gatherer {
	RegisterMetrics()
	return registry
}

func RecordCommand(command string, status int) {
	RegisterMetrics()
	cliCommands.WithLabelValues(command, strconv.Itoa(status)).Inc()
}

func RecordDump(mode string, elements int) {
	RegisterMetrics()
	dumpElements.WithLabelValues(mode).Add(float64(elements))
}

func RecordFatalExit(status int) {
	RegisterMetrics()
	fatalExits.WithLabelValues(strconv.Itoa(status)).Inc()
}

// WriteTextfile exports every metric in the node_exporter textfile format.
// An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Gatherer())
}
