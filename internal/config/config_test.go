package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SCREENACCESS_CONFIG_PATH", filepath.Join(t.TempDir(), "config.enc"))

	original := &Config{
		SaveDir:     "/home/user/Pictures",
		Interactive: true,
		Actions: []Action{
			{
				ID:         "a1",
				Label:      "Annotate",
				Command:    "satty",
				Arguments:  []string{"--filename", "{file}"},
				CreatedUTC: "2026-01-01T00:00:00Z",
				UpdatedUTC: "2026-01-01T00:00:00Z",
			},
		},
	}

	if err := Save(original, "passphrase"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load("passphrase")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.SaveDir != original.SaveDir || !loaded.Interactive {
		t.Fatalf("settings changed across round trip: %#v", loaded)
	}
	if len(loaded.Actions) != 1 || loaded.Actions[0].Command != "satty" {
		t.Fatalf("actions changed across round trip: %#v", loaded.Actions)
	}
}

func TestLoadMissingFileYieldsEmptyConfig(t *testing.T) {
	t.Setenv("SCREENACCESS_CONFIG_PATH", filepath.Join(t.TempDir(), "config.enc"))

	cfg, err := Load("passphrase")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Actions) != 0 || cfg.SaveDir != "" {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadWrongPassphraseFails(t *testing.T) {
	t.Setenv("SCREENACCESS_CONFIG_PATH", filepath.Join(t.TempDir(), "config.enc"))

	if err := Save(&Config{SaveDir: "/tmp"}, "correct"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := Load("wrong"); err == nil {
		t.Fatal("Load should fail with the wrong passphrase")
	}
}

func TestLoadRejectsEmptyPassphrase(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("Load should reject an empty passphrase")
	}
}

func TestConfigFileIsNotPlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.enc")
	t.Setenv("SCREENACCESS_CONFIG_PATH", path)

	if err := Save(&Config{SaveDir: "/home/user/Pictures"}, "passphrase"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config file: %v", err)
	}
	if bytes.Contains(raw, []byte("Pictures")) {
		t.Fatal("configuration stored in plaintext")
	}
}

func TestResolvePassphrasePrefersCompiledSecret(t *testing.T) {
	previous := CompiledSecret
	CompiledSecret = "compiled"
	defer func() { CompiledSecret = previous }()

	t.Setenv("SCREENACCESS_SECRET", "from-env")
	if got := ResolvePassphrase(); got != "compiled" {
		t.Fatalf("expected compiled secret to win, got %q", got)
	}
}

func TestResolvePassphraseFallsBackToEnv(t *testing.T) {
	previous := CompiledSecret
	CompiledSecret = ""
	defer func() { CompiledSecret = previous }()

	t.Setenv("SCREENACCESS_SECRET", " from-env ")
	if got := ResolvePassphrase(); got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}
