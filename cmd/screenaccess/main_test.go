package main

import (
	"testing"

	"github.com/example/screenaccess/internal/config"
)

func TestParseGlobalFlagsExtractsDebug(t *testing.T) {
	filtered, debug := parseGlobalFlags([]string{"--debug", "screenshot", "-interactive"})
	if !debug {
		t.Fatal("expected debug flag to be enabled")
	}
	if len(filtered) != 2 || filtered[0] != "screenshot" || filtered[1] != "-interactive" {
		t.Fatalf("unexpected filtered args: %#v", filtered)
	}
}

func TestParseGlobalFlagsWithoutDebug(t *testing.T) {
	filtered, debug := parseGlobalFlags([]string{"list"})
	if debug {
		t.Fatal("debug flag should not be set")
	}
	if len(filtered) != 1 || filtered[0] != "list" {
		t.Fatalf("unexpected filtered args: %#v", filtered)
	}
}

func TestNormalizeCommand(t *testing.T) {
	cases := map[string]string{
		"screenshot":   "screenshot",
		"--Pick-Color": "pick-color",
		"/list":        "list",
		"-ADD":         "add",
	}
	for in, want := range cases {
		if got := normalizeCommand(in); got != want {
			t.Fatalf("normalizeCommand(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseList(t *testing.T) {
	got := parseList(" --filename , {file} ,, -q ")
	if len(got) != 3 || got[0] != "--filename" || got[1] != "{file}" || got[2] != "-q" {
		t.Fatalf("unexpected list: %#v", got)
	}
	if parseList("") != nil {
		t.Fatal("empty input should yield nil")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("truncate kept value should be unchanged, got %q", got)
	}
	if got := truncate("a long action label here", 10); got != "a long ..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected short truncation: %q", got)
	}
}

func TestValidateAction(t *testing.T) {
	if err := validateAction(config.Action{Label: "Annotate", Command: "satty"}); err != nil {
		t.Fatalf("valid action rejected: %v", err)
	}
	if err := validateAction(config.Action{Command: "satty"}); err == nil {
		t.Fatal("missing label should be rejected")
	}
	if err := validateAction(config.Action{Label: "Annotate"}); err == nil {
		t.Fatal("missing command should be rejected")
	}
}
