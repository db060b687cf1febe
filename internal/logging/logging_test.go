package logging

import (
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/protocol"
)

func TestMaskIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "****"},
		{"abcd", "****"},
		{"ashpd_aB3xYz9_Qw", "************Z_Qw"},
	}
	for _, tc := range cases {
		if got := MaskIdentifier(tc.in); got != tc.want {
			t.Fatalf("MaskIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatVardictMasksHandleToken(t *testing.T) {
	out := FormatVardict(protocol.Vardict{
		"handle_token": dbus.MakeVariant("ashpd_aB3xYz9_Qw"),
		"interactive":  dbus.MakeVariant(true),
	})
	if strings.Contains(out, "ashpd_aB3xYz9_Qw") {
		t.Fatalf("handle token leaked into log output: %s", out)
	}
	if !strings.Contains(out, "interactive=true") {
		t.Fatalf("non-sensitive option missing from output: %s", out)
	}
}

func TestFormatVardictDeterministicOrder(t *testing.T) {
	results := protocol.Vardict{
		"b": dbus.MakeVariant(2),
		"a": dbus.MakeVariant(1),
		"c": dbus.MakeVariant(3),
	}
	want := "{a=1, b=2, c=3}"
	for i := 0; i < 10; i++ {
		if got := FormatVardict(results); got != want {
			t.Fatalf("FormatVardict = %q, want %q", got, want)
		}
	}
}
