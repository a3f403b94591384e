package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"JAVABITE_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"JAVABITE_TEST_TIMEOUT" envDefault:"10s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %v", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JAVABITE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), ""); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JAVABITE_TEST_DOTENV_NEW=from-file\nJAVABITE_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("JAVABITE_TEST_DOTENV_SET", "from-env")
	t.Setenv("JAVABITE_TEST_DOTENV_NEW", "")
	os.Unsetenv("JAVABITE_TEST_DOTENV_NEW")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("JAVABITE_TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("JAVABITE_TEST_DOTENV_NEW = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("JAVABITE_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("JAVABITE_TEST_DOTENV_SET = %q, want %q", got, "from-env")
	}
}
