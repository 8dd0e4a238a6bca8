package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFlag(t *testing.T) {
	var l Level
	if err := l.Set("debug"); err != nil || l != DEBUG {
		t.Fatalf("Set(debug) = %v, level %v", err, l)
	}
	if err := l.Set("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
	w := WARN
	if got := w.String(); got != "WARN" {
		t.Errorf("String() = %q", got)
	}
	if got := ParseLevel(" error ", INFO); got != ERROR {
		t.Errorf("ParseLevel = %v", got)
	}
	if got := ParseLevel("bogus", INFO); got != INFO {
		t.Errorf("ParseLevel fallback = %v", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	old := GetLogLevel()
	defer SetLogLevel(old)
	SetLogLevel(WARN)

	Info("hidden %d", 1)
	Warn("size=%d", 8)
	Error("parents=%v", []int{0, 0, 1})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO should be filtered:\n%s", out)
	}
	for _, want := range []string{"[WARN] size=8", "[ERR] parents=[0,0,1]", "logutil_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrintStruct(t *testing.T) {
	type inner struct {
		Root int
	}
	type group struct {
		Name    string
		Members []int
		Inner   inner
		hidden  int
	}
	out := PrintStruct(group{Name: "g", Members: []int{1, 2}, Inner: inner{Root: 1}, hidden: 3}, false)
	for _, want := range []string{"Name", "Members", "Root"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
