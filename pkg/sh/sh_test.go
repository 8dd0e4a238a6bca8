package sh

import "testing"

func TestBashANSIQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `$'plain'`},
		{"it's", `$'it\'s'`},
		{"a\tb\n", `$'a\tb\n'`},
		{"\x01中文", `$'\001中文'`},
		{`back\slash`, `$'back\\slash'`},
	}
	for _, tt := range tests {
		if got := BashANSIQuote(tt.in); got != tt.want {
			t.Errorf("BashANSIQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDeclare(t *testing.T) {
	if got := Declare("RESULT", "true"); got != "unset -v RESULT ; declare RESULT=$'true'\n" {
		t.Errorf("Declare = %q", got)
	}
	got := DeclareArray("REP", []string{"0", "1"})
	if got != "unset -v REP ; declare -a REP=($'0' $'1')\n" {
		t.Errorf("DeclareArray = %q", got)
	}
}

func TestValidName(t *testing.T) {
	for _, ok := range []string{"RESULT", "_x1", "uf_rep"} {
		if !ValidName(ok) {
			t.Errorf("ValidName(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "1abc", "a-b", "a b"} {
		if ValidName(bad) {
			t.Errorf("ValidName(%q) = true", bad)
		}
	}
}
