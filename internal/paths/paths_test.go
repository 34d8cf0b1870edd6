package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		got := ConfigDir()
		want := filepath.Join(ConfigHome(), AppName)
		if got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigEnvVar, dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigEnvVar, dir)

	want := filepath.Join(dir, "config.yaml")
	if got := ConfigFile(); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}
