package config

import (
	"testing"

	tu "github.com/thenatx/nart/internal/testutil"
)

func TestSettings_SaveLoad(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	// Missing file yields zero settings.
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Shell != "" || got.Foreground != "" {
		t.Fatalf("expected zero settings, got %+v", got)
	}

	want := Settings{Shell: "/bin/zsh", Foreground: "#AABBCC"}
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
