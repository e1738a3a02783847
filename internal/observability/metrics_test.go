package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/usefulgo/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordCommand("dump", 0)
	RecordDump("byte", 20)
	RecordFatalExit(2)

	families, err := Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"usefulgo_cli_commands_total",
		"usefulgo_dump_elements_total",
		"usefulgo_diag_fatal_exits_total",
	} {
		if !names[want] {
			t.Fatalf("missing metric family %s in %v", want, names)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordDump("word", 4)
	path := filepath.Join(t.TempDir(), "usefulgo.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), `usefulgo_dump_elements_total{mode="word"}`) {
		t.Fatalf("textfile missing dump counter:\n%s", data)
	}
	if err := WriteTextfile(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}
