package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/kbukum/rxkit/errors"
)

type demoSection struct {
	Values []string      `yaml:"values" mapstructure:"values"`
	Delay  time.Duration `yaml:"delay" mapstructure:"delay"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Demo          demoSection `yaml:"demo" mapstructure:"demo"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development with debug logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug log level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps debug false and info logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info log level, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid production", ServiceConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "name: is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "qa"}, true, "environment: must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
		})
	}
}

func TestServiceConfigValidate_Logging(t *testing.T) {
	cfg := ServiceConfig{Name: "svc", Environment: "staging"}
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "json"
	cfg.Logging.Output = "stdout"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging") {
		t.Errorf("expected logging error, got %v", err)
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: rxdemo
environment: staging
logging:
  level: warn
  format: json
demo:
  values: ["10", "20", "30"]
  delay: 2s
`)

	var cfg testConfig
	if err := LoadConfig("rxdemo", &cfg, WithConfigFile(configPath), WithEnvPrefix("RXTEST_")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "rxdemo" {
		t.Errorf("expected name 'rxdemo', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging.level 'warn', got %q", cfg.Logging.Level)
	}
	if len(cfg.Demo.Values) != 3 || cfg.Demo.Values[1] != "20" {
		t.Errorf("unexpected values %v", cfg.Demo.Values)
	}
	if cfg.Demo.Delay != 2*time.Second {
		t.Errorf("expected delay 2s, got %v", cfg.Demo.Delay)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: rxdemo\ndemo:\n  delay: 2s\n")
	t.Setenv("RXTEST_DEMO_DELAY", "250ms")
	t.Setenv("RXTEST_LOGGING_NO_COLOR", "true")

	var cfg testConfig
	if err := LoadConfig("rxdemo", &cfg, WithConfigFile(configPath), WithEnvPrefix("RXTEST_")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Demo.Delay != 250*time.Millisecond {
		t.Errorf("expected env override 250ms, got %v", cfg.Demo.Delay)
	}
	if !cfg.Logging.NoColor {
		t.Error("expected logging.no_color from env")
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "RXTEST_NAME=from-env-file\n")
	t.Cleanup(func() { _ = os.Unsetenv("RXTEST_NAME") })

	var cfg testConfig
	err := LoadConfig("rxdemo", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("RXTEST_"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "from-env-file" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("RXTEST_NONE_"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: [unclosed\n")

	var cfg testConfig
	if err := LoadConfig("rxdemo", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
func (m *mockFS) Getwd() (string, error)    { return "/mock", nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"../cmd/rxdemo/config.yml": true,
		"./config.yml":             true,
		"./.env":                   true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("rxdemo", LoaderConfig{})
	if files.ConfigFile != "../cmd/rxdemo/config.yml" {
		t.Errorf("expected the service-specific config first, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPathsWin(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./config.yml": true}}}
	files := resolver.ResolveFiles("rxdemo", LoaderConfig{ConfigFile: "/etc/rx.yml", EnvFile: "/etc/rx.env"})
	if files.ConfigFile != "/etc/rx.yml" || files.EnvFile != "/etc/rx.env" {
		t.Errorf("explicit paths should be kept, got %+v", files)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("rx_")(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected paths %+v", lc)
	}
	if lc.EnvPrefix != "RX_" {
		t.Errorf("expected upper-cased prefix, got %q", lc.EnvPrefix)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("LOGGING_NO_COLOR")
	want := map[string]bool{
		"logging_no_color": true,
		"logging.no.color": true,
		"logging.no_color": true,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d variants, got %v", len(want), got)
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("unexpected variant %q", v)
		}
	}

	if single := generateEnvKeyVariants("NAME"); len(single) != 1 || single[0] != "name" {
		t.Errorf("unexpected single-part variants %v", single)
	}
}

func TestBindEnvVars_Prefix(t *testing.T) {
	v := viper.New()
	bindEnvVars(v, []string{"RX_DEMO_DELAY=1s", "OTHER_DEMO_DELAY=9s", "MALFORMED"}, "RX_")
	if v.GetString("demo.delay") != "1s" {
		t.Errorf("expected demo.delay=1s, got %q", v.GetString("demo.delay"))
	}
}
