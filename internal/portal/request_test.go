package portal

import (
	"testing"

	"github.com/example/screenaccess/internal/handle"
)

func TestRequestPathEscapesSender(t *testing.T) {
	cases := []struct {
		sender string
		token  handle.Token
		want   string
	}{
		{":1.42", "ashpd_0123456789", "/org/freedesktop/portal/desktop/request/1_42/ashpd_0123456789"},
		{":1.0", "tok", "/org/freedesktop/portal/desktop/request/1_0/tok"},
		{":2.103.5", "t", "/org/freedesktop/portal/desktop/request/2_103_5/t"},
	}
	for _, tc := range cases {
		got := requestPath(tc.sender, tc.token)
		if string(got) != tc.want {
			t.Fatalf("requestPath(%q, %q) = %q, want %q", tc.sender, tc.token, got, tc.want)
		}
		if !got.IsValid() {
			t.Fatalf("requestPath(%q, %q) produced invalid object path %q", tc.sender, tc.token, got)
		}
	}
}
