package handle

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestParseAcceptsMemberNameCharacters(t *testing.T) {
	for _, value := range []string{
		"ashpd_aB3xYz9_Qw",
		"token",
		"UPPER_lower_0123456789",
		"_",
		"",
	} {
		token, err := Parse(value)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", value, err)
		}
		if string(token) != value {
			t.Fatalf("Parse(%q) returned %q", value, token)
		}
	}
}

func TestParseRejectsFirstOffendingCharacter(t *testing.T) {
	cases := []struct {
		value string
		char  rune
	}{
		{"ashpd-token", '-'},
		{"with space", ' '},
		{"dot.ted", '.'},
		{"ok_until/here", '/'},
		{"ümlaut", 'ü'},
	}
	for _, tc := range cases {
		_, err := Parse(tc.value)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", tc.value)
		}
		var invalid *InvalidCharError
		if !errors.As(err, &invalid) {
			t.Fatalf("Parse(%q) returned %T, want *InvalidCharError", tc.value, err)
		}
		if invalid.Char != tc.char {
			t.Fatalf("Parse(%q) flagged %q, want %q", tc.value, invalid.Char, tc.char)
		}
	}
}

func TestGenerateShape(t *testing.T) {
	token := string(Generate(nil))
	if !strings.HasPrefix(token, "ashpd_") {
		t.Fatalf("token %q lacks the ashpd_ prefix", token)
	}
	suffix := strings.TrimPrefix(token, "ashpd_")
	if len(suffix) != 10 {
		t.Fatalf("token suffix %q has length %d, want 10", suffix, len(suffix))
	}
	for _, r := range suffix {
		if r == '_' || !isTokenChar(r) {
			t.Fatalf("token suffix %q contains non-alphanumeric %q", suffix, r)
		}
	}
}

func TestGenerateIsParseable(t *testing.T) {
	for i := 0; i < 100; i++ {
		token := Generate(nil)
		if _, err := Parse(string(token)); err != nil {
			t.Fatalf("generated token %q does not parse: %v", token, err)
		}
	}
}

func TestGenerateDeterministicWithSeededSource(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(1, 2)))
	b := Generate(rand.New(rand.NewPCG(1, 2)))
	if a != b {
		t.Fatalf("seeded generation diverged: %q vs %q", a, b)
	}
	c := Generate(rand.New(rand.NewPCG(3, 4)))
	if a == c {
		t.Fatalf("different seeds produced identical token %q", a)
	}
}
