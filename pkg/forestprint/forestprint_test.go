package forestprint_test

import (
	"fmt"
	"strings"
	"testing"

	"disjoint_tool/pkg/forestprint"
)

func TestPrintForestASCII(t *testing.T) {
	parents := []int{0, 1, 1, 2, 1}
	out, err := forestprint.Printer{}.PrintParents(parents)
	if err != nil {
		t.Fatalf("PrintParents: %v", err)
	}
	want := "0\n" +
		"1\n" +
		".-- 2\n" +
		"|   '-- 3\n" +
		"'-- 4\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestPrintForestUnicodeLabels(t *testing.T) {
	names := []string{"Zurich", "Munich", "Paris"}
	p := forestprint.Printer{
		Style:          forestprint.StyleUnicode,
		Label:          func(pos int) string { return fmt.Sprintf("%s(%d)", names[pos], pos) },
		SkipSingletons: true,
	}
	out, err := p.PrintParents([]int{0, 2, 2})
	if err != nil {
		t.Fatalf("PrintParents: %v", err)
	}
	if strings.Contains(out, "Zurich") {
		t.Errorf("singleton should be skipped:\n%s", out)
	}
	if !strings.Contains(out, "Paris(2)\n└── Munich(1)\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	t.Logf("forest:\n%s", out)
}

func TestPrintEmptyAndCycle(t *testing.T) {
	out, err := forestprint.Printer{}.PrintParents(nil)
	if err != nil || out != "forest is empty\n" {
		t.Fatalf("empty forest: %q %v", out, err)
	}
	if _, err := forestprint.Build([]int{1, 0}); err == nil {
		t.Fatalf("expected cycle error")
	}
}
