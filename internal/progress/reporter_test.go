package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Building site"}

	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "members.html")
	r.Finish()

	want := "Building site: 2 steps\n[1/2] index.html\n[2/2] members.html\nBuilding site: done\n"
	if buf.String() != want {
		t.Errorf("CIReporter output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Building site").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter("Building site").(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}
