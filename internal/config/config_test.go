package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
worker:
  sources:
    - name: "main account"
      file: "data/lifelist.csv"
      enabled: true
    - name: "archived account"
      file: "data/old.csv"
      enabled: false
  output:
    path: "out/lifelist.json"
    format: "json"
    pretty_print: true
    create_backup: true
  validation:
    max_observations: 100000
    require_region: false
  logging:
    level: "info"
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Worker.Sources) != 2 {
		t.Errorf("Expected 2 sources, got %d", len(cfg.Worker.Sources))
	}

	if cfg.Worker.Sources[0].File != "data/lifelist.csv" {
		t.Errorf("Expected source file 'data/lifelist.csv', got '%s'", cfg.Worker.Sources[0].File)
	}

	if cfg.Worker.Output.Format != "json" {
		t.Errorf("Expected output format 'json', got '%s'", cfg.Worker.Output.Format)
	}

	if !cfg.Worker.Output.PrettyPrint {
		t.Error("Expected pretty_print to be true")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func baseConfig() *Config {
	return &Config{
		Worker: WorkerConfig{
			Sources: []SourceConfig{
				{Name: "main", File: "data/lifelist.csv", Enabled: true},
			},
			Output: OutputConfig{
				Path:   "out/lifelist.json",
				Format: "json",
			},
			Logging: LoggingConfig{Level: "info"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "No sources",
			mutate:  func(c *Config) { c.Worker.Sources = nil },
			wantErr: ErrNoSources,
		},
		{
			name:    "Source missing file",
			mutate:  func(c *Config) { c.Worker.Sources[0].File = "" },
			wantErr: ErrSourceMissingFile,
		},
		{
			name:    "No enabled sources",
			mutate:  func(c *Config) { c.Worker.Sources[0].Enabled = false },
			wantErr: ErrNoEnabledSources,
		},
		{
			name:    "Missing output path",
			mutate:  func(c *Config) { c.Worker.Output.Path = "" },
			wantErr: ErrMissingOutputPath,
		},
		{
			name:    "Bad output format",
			mutate:  func(c *Config) { c.Worker.Output.Format = "xml" },
			wantErr: ErrInvalidOutputFormat,
		},
		{
			name:    "Negative max observations",
			mutate:  func(c *Config) { c.Worker.Validation.MaxObservations = -1 },
			wantErr: ErrInvalidMaxObservations,
		},
		{
			name:    "Bad log level",
			mutate:  func(c *Config) { c.Worker.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_JSONL(t *testing.T) {
	cfg := baseConfig()
	cfg.Worker.Output.Format = "jsonl"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate rejected jsonl format: %v", err)
	}
}

func TestConfig_GetEnabledSources(t *testing.T) {
	cfg := baseConfig()
	cfg.Worker.Sources = append(cfg.Worker.Sources, SourceConfig{
		Name: "archived", File: "data/old.csv", Enabled: false,
	})

	enabled := cfg.GetEnabledSources()
	if len(enabled) != 1 {
		t.Fatalf("Expected 1 enabled source, got %d", len(enabled))
	}

	if enabled[0].Name != "main" {
		t.Errorf("Expected enabled source 'main', got '%s'", enabled[0].Name)
	}
}

func TestConfig_SaveConfig_RoundTrip(t *testing.T) {
	cfg := baseConfig()

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig after save failed: %v", err)
	}

	if loaded.String() != cfg.String() {
		t.Errorf("Round-tripped config differs: %s vs %s", loaded.String(), cfg.String())
	}
}
