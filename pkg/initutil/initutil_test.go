package initutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"disjoint_tool/pkg/logutil"
	"disjoint_tool/pkg/unionfind"
)

func TestParseDefaults(t *testing.T) {
	mockConf := `
# ufctl 默认配置
strategy=quickfind
heuristic = size ; 注释
compress=off
size=128
width=8
log_level=debug
`
	want := Defaults{
		Strategy:  unionfind.KindQuickFind,
		Heuristic: unionfind.HeuristicSize,
		Compress:  false,
		Size:      128,
		Width:     8,
		LogLevel:  logutil.DEBUG,
	}
	got := ParseDefaults(mockConf)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaultsFallback(t *testing.T) {
	got := ParseDefaults("strategy=bogus\nsize=abc\n")
	if diff := cmp.Diff(NewDefaults(), got); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractIntConfig(t *testing.T) {
	conf := `
size=300;
width=16;
some_other_key=999;
# size=should_be_ignored
`

	tests := []struct {
		name       string
		key        string
		defaultVal int
		want       int
	}{
		{"size present", "size", 10, 300},
		{"width present", "width", 32, 16},
		{"missing key fallback", "nonexistent", 42, 42},
		{"other key", "some_other_key", 1000, 999},
		{"commented-out key", "#size", 123, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractIntConfig(conf, tt.key, tt.defaultVal)
			if got != tt.want {
				t.Errorf("key=%q expect=%d got=%d", tt.key, tt.want, got)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults("")
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	if diff := cmp.Diff(NewDefaults(), d); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "ufctl.ini")
	if err := os.WriteFile(path, []byte("size=12\nheuristic=unweighted\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err = LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if d.Size != 12 || d.Heuristic != unionfind.HeuristicUnweighted {
		t.Errorf("unexpected defaults: %+v", d)
	}

	if _, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
