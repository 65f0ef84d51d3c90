package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name       string
		content    string
		wantInput  string
		wantOutput string
		wantErr    bool
	}{
		{"full file", "input_file: posts.json\noutput_directory: out\nworkers: 3\n", "posts.json", "out", false},
		{"partial file keeps defaults", "workers: 2\n", "data4.json", ".", false},
		{"invalid yaml", "workers: [\n", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			settings, err := loadSettings(path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadSettings() error = %v", err)
			}
			if settings.InputFile != tt.wantInput {
				t.Errorf("InputFile = %q, want %q", settings.InputFile, tt.wantInput)
			}
			if settings.OutputDirectory != tt.wantOutput {
				t.Errorf("OutputDirectory = %q, want %q", settings.OutputDirectory, tt.wantOutput)
			}
		})
	}
}

func TestLoadSettingsFallback(t *testing.T) {
	settings, err := loadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.InputFile != "data4.json" {
		t.Errorf("InputFile = %q, want data4.json", settings.InputFile)
	}
}

func TestLoadSettingsRequired(t *testing.T) {
	if _, err := loadSettingsRequired(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing settings file")
	}
}

func TestNewConfigOverrides(t *testing.T) {
	tempDir := t.TempDir()
	settingsPath := filepath.Join(tempDir, "settings.yaml")
	if err := os.WriteFile(settingsPath, []byte("output_directory: from-file\nconvert_html: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := "from-flag"
	convert := true
	config, err := NewConfig(&ConfigOverrides{
		SettingsPath:    &settingsPath,
		OutputDirectory: &outDir,
		ConvertHTML:     &convert,
	})
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if config.Settings.OutputDirectory != "from-flag" {
		t.Errorf("OutputDirectory = %q, want from-flag", config.Settings.OutputDirectory)
	}
	if !config.Settings.ConvertHTML {
		t.Error("ConvertHTML override not applied")
	}
	if config.Settings.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", config.Settings.Workers, runtime.NumCPU())
	}

	missing := filepath.Join(tempDir, "nope.yaml")
	if _, err := NewConfig(&ConfigOverrides{SettingsPath: &missing}); err == nil {
		t.Error("expected error for missing explicit settings file")
	}
}

func TestGetTemplate(t *testing.T) {
	config := &Config{Settings: &Settings{}}
	tmpl, err := config.GetTemplate()
	if err != nil {
		t.Fatalf("GetTemplate() error = %v", err)
	}
	if tmpl != defaultTemplate {
		t.Error("expected embedded template")
	}

	path := filepath.Join(t.TempDir(), "custom.md")
	if err := os.WriteFile(path, []byte("---\ntitle: {{.Title}}\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}
	config.Overrides = &ConfigOverrides{TemplatePath: &path}

	tmpl, err = config.GetTemplate()
	if err != nil {
		t.Fatalf("GetTemplate() error = %v", err)
	}
	if tmpl != "---\ntitle: {{.Title}}\n---\n" {
		t.Errorf("GetTemplate() = %q", tmpl)
	}
}
