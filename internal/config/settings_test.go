package config

import "testing"

func TestNewSettingsDefaults(t *testing.T) {
	t.Setenv(EnvExecutable, "")

	settings := NewSettings()

	if settings.Executable() != DefaultExecutable {
		t.Errorf("Expected executable %q, got %q", DefaultExecutable, settings.Executable())
	}

	if settings.SaveDir() == "" {
		t.Error("Expected non-empty save dir")
	}
}

func TestNewSettingsExecutableOverride(t *testing.T) {
	t.Setenv(EnvExecutable, "/opt/tools/yt-dlp-nightly")

	settings := NewSettings()

	if settings.Executable() != "/opt/tools/yt-dlp-nightly" {
		t.Errorf("Expected overridden executable, got %q", settings.Executable())
	}
}

func TestSetSaveDir(t *testing.T) {
	settings := NewSettings()

	settings.SetSaveDir("/data/videos")
	if settings.SaveDir() != "/data/videos" {
		t.Errorf("Expected save dir '/data/videos', got %q", settings.SaveDir())
	}

	// Empty assignment is ignored
	settings.SetSaveDir("")
	if settings.SaveDir() != "/data/videos" {
		t.Errorf("Expected save dir to be unchanged, got %q", settings.SaveDir())
	}
}
