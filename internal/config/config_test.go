package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/Faultbox/tubegen/pkg/math"
	"github.com/Faultbox/tubegen/pkg/tube"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test tube defaults
	if cfg.Tube.Subdivisions != 3 {
		t.Errorf("expected subdivisions 3, got %d", cfg.Tube.Subdivisions)
	}
	if cfg.Tube.Segments != 8 {
		t.Errorf("expected segments 8, got %d", cfg.Tube.Segments)
	}
	if cfg.Tube.StartWidth != 1 || cfg.Tube.EndWidth != 1 {
		t.Errorf("expected widths 1/1, got %f/%f", cfg.Tube.StartWidth, cfg.Tube.EndWidth)
	}
	if cfg.Tube.Inside {
		t.Error("expected inside to be false by default")
	}

	// Test polyline defaults
	if len(cfg.Polyline) != 2 {
		t.Errorf("expected 2 default control points, got %d", len(cfg.Polyline))
	}

	// Test nodes and output defaults
	if cfg.Nodes.Show {
		t.Error("expected show nodes to be false by default")
	}
	if cfg.Output.Path != "tube.obj" {
		t.Errorf("expected output tube.obj, got %s", cfg.Output.Path)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tubegen.yaml")

	yamlContent := `
tube:
  subdivisions: 4
  segments: 12
  start_width: 0.5
  end_width: 2
  uv_scale: {x: 2, y: 0.5}
  inside: true

polyline:
  - [0, 0, 0]
  - [0, 5, 5]
  - [10, 5, 5]

transform:
  position: [1, 2, 3]
  yaw: 90
  scale: 2

nodes:
  show: true
  segments: 8

output:
  path: "out/tunnel.mpk"
  format: "msgpack"

logging:
  level: "debug"
  log_file: "tubegen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := tube.Params{
		Subdivisions: 4,
		Segments:     12,
		StartWidth:   0.5,
		EndWidth:     2,
		UVScale:      math.Vec2{X: 2, Y: 0.5},
		Inside:       true,
	}
	if cfg.Tube != want {
		t.Errorf("tube params = %+v, want %+v", cfg.Tube, want)
	}

	if len(cfg.Polyline) != 3 {
		t.Fatalf("expected 3 control points, got %d", len(cfg.Polyline))
	}
	if cfg.Polyline[2] != (Point{10, 5, 5}) {
		t.Errorf("expected third point [10 5 5], got %v", cfg.Polyline[2])
	}
	positions := cfg.Positions()
	if positions[1] != (math.Vec3{X: 0, Y: 5, Z: 5}) {
		t.Errorf("Positions()[1] = %v", positions[1])
	}

	if cfg.Transform.Position != (Point{1, 2, 3}) || cfg.Transform.Yaw != 90 || cfg.Transform.Scale != 2 {
		t.Errorf("unexpected transform %+v", cfg.Transform)
	}
	if !cfg.Nodes.Show || cfg.Nodes.Segments != 8 {
		t.Errorf("unexpected nodes %+v", cfg.Nodes)
	}
	if cfg.Output.Path != "out/tunnel.mpk" || cfg.Output.Format != "msgpack" {
		t.Errorf("unexpected output %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "tubegen.log" {
		t.Errorf("expected log file 'tubegen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
tube:
  segments: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileBadPoint(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_point.yaml")

	if err := os.WriteFile(configPath, []byte("polyline:\n  - [1, 2]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for a two-component point, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "tubegen.yaml")
	if err := os.WriteFile(configPath, []byte("tube:\n  segments: 6\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find tubegen.yaml in current directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty polyline", func(c *Config) { c.Polyline = nil }, ErrEmptyPolyline},
		{"bad subdivisions", func(c *Config) { c.Tube.Subdivisions = 0 }, tube.ErrSubdivisions},
		{"negative width", func(c *Config) { c.Tube.EndWidth = -1 }, tube.ErrWidth},
		{"hidden nodes ignore segments", func(c *Config) { c.Nodes.Segments = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	cfg := Default()
	cfg.Nodes.Show = true
	cfg.Nodes.Segments = 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for 2 marker segments")
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := TransformConfig{Position: Point{1, 0, 0}}
	got := tr.Matrix().TransformPoint(math.Vec3{X: 1, Y: 1, Z: 1})
	if got != (math.Vec3{X: 2, Y: 1, Z: 1}) {
		t.Errorf("zero scale should act as 1, got %v", got)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "tube shape flags",
			args: []string{"--segments", "16", "--subdivisions=5", "--start-width", "0.25", "--end-width", "3"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Tube.Segments != 16 || cfg.Tube.Subdivisions != 5 {
					t.Errorf("expected 16/5, got %d/%d", cfg.Tube.Segments, cfg.Tube.Subdivisions)
				}
				if cfg.Tube.StartWidth != 0.25 || cfg.Tube.EndWidth != 3 {
					t.Errorf("expected widths 0.25/3, got %f/%f", cfg.Tube.StartWidth, cfg.Tube.EndWidth)
				}
			},
		},
		{
			name: "zero segments is an explicit override",
			args: []string{"--segments=0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Tube.Segments != 0 {
					t.Errorf("expected segments 0, got %d", cfg.Tube.Segments)
				}
			},
		},
		{
			name: "unset flags keep config",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Tube.Segments != 8 || cfg.Output.Path != "tube.obj" {
					t.Errorf("defaults changed without flags: %+v", cfg)
				}
			},
		},
		{
			name: "output flags",
			args: []string{"-o", "a.mpk", "--format", "msgpack", "--inside", "--show-nodes"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Path != "a.mpk" || cfg.Output.Format != "msgpack" {
					t.Errorf("unexpected output %+v", cfg.Output)
				}
				if !cfg.Tube.Inside || !cfg.Nodes.Show {
					t.Error("expected inside and show nodes")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags := BindFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			cfg := Default()
			flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tubegen.yaml")

	yamlContent := `
tube:
  segments: 6
  subdivisions: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"--config", configPath, "--segments", "10"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Segments should be from flag (10), not file (6)
	if cfg.Tube.Segments != 10 {
		t.Errorf("expected segments 10 from flag, got %d", cfg.Tube.Segments)
	}

	// Subdivisions should be from file (2) since no flag override
	if cfg.Tube.Subdivisions != 2 {
		t.Errorf("expected subdivisions 2 from file, got %d", cfg.Tube.Subdivisions)
	}

	if Path(flags) != configPath {
		t.Errorf("Path() = %s, want %s", Path(flags), configPath)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tubegen.yaml")

	cfg := Default()
	cfg.Tube.Segments = 5
	cfg.Polyline = append(cfg.Polyline, Point{3, 4, 5})
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Tube != cfg.Tube {
		t.Errorf("tube params = %+v, want %+v", loaded.Tube, cfg.Tube)
	}
	if len(loaded.Polyline) != 3 || loaded.Polyline[2] != (Point{3, 4, 5}) {
		t.Errorf("unexpected polyline %v", loaded.Polyline)
	}
}
