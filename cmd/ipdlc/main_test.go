package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ipdl-lang/ipdlc/internal/testutil"
)

const validInput = `{
  "units": [
    {
      "filePath": "PFoo.ipdl",
      "name": "PFoo",
      "protocol": {
        "sendSemantics": "async",
        "messages": [
          {"name": "Hello", "sendSemantics": "async", "direction": "toChild"}
        ]
      }
    }
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRunAcceptsAValidUnitSet(t *testing.T) {
	path := writeTemp(t, "units.json", validInput)
	testutil.Equal(t, exitOK, run([]string{path}))
}

func TestRunReportsDiagnosticsForAnEmptyTopLevelProtocol(t *testing.T) {
	path := writeTemp(t, "units.json", `{"units":[{"filePath":"PFoo.ipdl","name":"PFoo","protocol":{"sendSemantics":"async"}}]}`)
	testutil.Equal(t, exitDiags, run([]string{path}))
}

func TestRunPrintsManagerOrder(t *testing.T) {
	path := writeTemp(t, "units.json", validInput)
	testutil.Equal(t, exitOK, run([]string{"-manager-order", path}))
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	path := writeTemp(t, "units.json", validInput)
	testutil.Equal(t, exitError, run([]string{"-format", "xml", path}))
}

func TestRunRejectsMissingArgument(t *testing.T) {
	testutil.Equal(t, exitError, run(nil))
}
