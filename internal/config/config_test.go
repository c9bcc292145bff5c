package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/gifs", "/media/gifs"},
		{"single trailing slash", "/media/gifs/", "/media/gifs"},
		{"multiple trailing slashes", "/media/gifs///", "/media/gifs"},
		{"double quotes", `"/media/gifs"`, "/media/gifs"},
		{"single quotes", "'/media/gifs'", "/media/gifs"},
		{"quotes and slash", `"/media/gifs/"`, "/media/gifs"},
		{"surrounding whitespace", "  /media/gifs ", "/media/gifs"},
		{"root path", "/", "/"},
		{"relative path", "gifs", "gifs"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/media/gifs"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestValidate_FPSAndWidth(t *testing.T) {
	tests := []struct {
		name    string
		fps     int
		width   int
		wantErr bool
	}{
		{"defaults valid", 15, 480, false},
		{"minimum valid", 1, 1, false},
		{"zero fps", 0, 480, true},
		{"negative fps", -5, 480, true},
		{"zero width", 15, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = "/tmp/x"
			cfg.FPS = tt.fps
			cfg.Width = tt.width
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip dir requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_InputDirRequired(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty InputDir: want error, got nil")
	}

	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() in check-only mode: %v", err)
	}
}

func TestApplyFile_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "fps: 10\nwidth: 320\ncolor: never\nlog: /tmp/gifnorm.log\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := ApplyFile(&cfg, path, true); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if cfg.FPS != 10 || cfg.Width != 320 {
		t.Errorf("got fps=%d width=%d, want 10/320", cfg.FPS, cfg.Width)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("got color %q, want never", cfg.ColorMode)
	}
	if cfg.LogFile != "/tmp/gifnorm.log" {
		t.Errorf("got log %q", cfg.LogFile)
	}
}

func TestApplyFile_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("fps: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := ApplyFile(&cfg, path, true); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if cfg.FPS != 24 {
		t.Errorf("got fps=%d, want 24", cfg.FPS)
	}
	if cfg.Width != 480 || cfg.ColorMode != ColorAuto {
		t.Errorf("unset keys must keep defaults: width=%d color=%q", cfg.Width, cfg.ColorMode)
	}
}

func TestApplyFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	if err := ApplyFile(&cfg, missing, false); err != nil {
		t.Errorf("implicit missing file must be ignored: %v", err)
	}
	if err := ApplyFile(&cfg, missing, true); err == nil {
		t.Error("explicit missing file must error")
	}
}

func TestApplyFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := ApplyFile(&cfg, path, true); err == nil {
		t.Error("malformed YAML must error")
	}
}
