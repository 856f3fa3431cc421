package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9090\n  env: production\ndatabase:\n  host: db.internal\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("unexpected db host %q", cfg.Database.Host)
	}
	// Unset fields keep defaults.
	if cfg.Database.Port != 3306 {
		t.Errorf("expected default db port, got %d", cfg.Database.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("expected env override port 7001, got %d", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("expected env override secret, got %q", cfg.JWT.Secret)
	}
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 3307, User: "u", Password: "p", Name: "n"}
	want := "u:p@tcp(h:3307)/n?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := d.GetDSN(); got != want {
		t.Errorf("dsn mismatch:\n got %s\nwant %s", got, want)
	}
}
