package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
[log]
level = "debug"

[delaunay]
shuffle = false

[retriangulator]
absolute_tolerance = 0.001
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Delaunay.Shuffle {
		t.Errorf("shuffle should be disabled")
	}
	if cfg.Delaunay.Seed != 0x12345678 {
		t.Errorf("seed = %#x, want the default", cfg.Delaunay.Seed)
	}
	if cfg.Retriangulator.AbsoluteTolerance != 0.001 {
		t.Errorf("absolute tolerance = %v", cfg.Retriangulator.AbsoluteTolerance)
	}
	if cfg.Retriangulator.RelativeTolerance != 1e-6 {
		t.Errorf("relative tolerance = %v, want the default", cfg.Retriangulator.RelativeTolerance)
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
		{"negative tolerance", "[retriangulator]\nabsolute_tolerance = -1.0\n"},
		{"malformed", "[log\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.toml")
	cfg := DefaultConfig()
	cfg.Delaunay.Seed = 7
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Delaunay.Seed != 7 {
		t.Errorf("seed = %d, want 7", loaded.Delaunay.Seed)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestSetLogLevel(t *testing.T) {
	if err := SetLogLevel("warn"); err != nil {
		t.Fatalf("SetLogLevel: %v", err)
	}
	if err := SetLogLevel("nope"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	_ = SetLogLevel("info")
}

func TestFatalHandler(t *testing.T) {
	var got error
	prev := SetFatalHandler(func(err error) { got = err })
	defer SetFatalHandler(prev)

	Fatal(ErrValidationFailed)
	if !errors.Is(got, ErrValidationFailed) {
		t.Errorf("handler received %v", got)
	}
}
