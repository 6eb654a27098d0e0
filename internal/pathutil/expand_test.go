package pathutil

import (
	"path/filepath"
	"testing"
)

func TestExpand_HomeShortcut(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/.llmswitch/config.yaml")
	if err != nil {
		t.Fatalf("expand path: %v", err)
	}

	want := filepath.Join(home, ".llmswitch", "config.yaml")
	if got != want {
		t.Fatalf("path mismatch: got %q want %q", got, want)
	}

	got, err = Expand("~")
	if err != nil {
		t.Fatalf("expand bare tilde: %v", err)
	}
	if got != home {
		t.Fatalf("bare tilde: got %q want %q", got, home)
	}
}

func TestExpand_EnvVar(t *testing.T) {
	t.Setenv("LLMSWITCH_PATH_TEST", "/tmp/llmswitch-path")

	got, err := Expand("$LLMSWITCH_PATH_TEST/config.yaml")
	if err != nil {
		t.Fatalf("expand path: %v", err)
	}

	want := filepath.Clean("/tmp/llmswitch-path/config.yaml")
	if got != want {
		t.Fatalf("path mismatch: got %q want %q", got, want)
	}
}

func TestExpand_UnresolvedHome(t *testing.T) {
	t.Setenv("HOME", "~")

	if _, err := Expand("~/.llmswitch"); err == nil {
		t.Fatal("expected error when HOME is not resolved")
	}
}

func TestExpand_Empty(t *testing.T) {
	got, err := Expand("   ")
	if err != nil || got != "" {
		t.Fatalf("expected empty result, got %q, %v", got, err)
	}
}
