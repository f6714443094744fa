package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConnectionString(t *testing.T) {
	dbs := &DatabaseSettings{
		Host:     "localhost",
		Port:     5432,
		User:     "reviewzone",
		Password: "secret",
		Name:     "reviewzone_db",
	}

	got := dbs.ConnectionString()
	want := "host=localhost port=5432 user=reviewzone password=secret dbname=reviewzone_db sslmode=disable"
	if got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}

func TestServerAddress(t *testing.T) {
	ss := &ServerSettings{Host: "0.0.0.0", Port: 8080}
	if got := ss.ServerAddress(); got != "0.0.0.0:8080" {
		t.Errorf("ServerAddress() = %q, want %q", got, "0.0.0.0:8080")
	}
}

func TestEnvironmentChecks(t *testing.T) {
	tests := []struct {
		env   string
		isDev bool
		isPrd bool
		isTst bool
	}{
		{"development", true, false, false},
		{"Production", false, true, false},
		{"testing", false, false, true},
	}

	for _, tt := range tests {
		as := &AppSettings{Environment: tt.env}
		if as.IsDevelopment() != tt.isDev || as.IsProduction() != tt.isPrd || as.IsTesting() != tt.isTst {
			t.Errorf("Environment checks wrong for %q", tt.env)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_USER", "reviewzone")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port == 0 {
		t.Error("Expected default server port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		t.Error("Expected default shutdown timeout")
	}
	// Non-production environments get the cheap bcrypt cost
	if cfg.Password.BcryptCost != 4 {
		t.Errorf("Expected dev bcrypt cost 4, got %d", cfg.Password.BcryptCost)
	}
	if cfg.Email.FromAddress == "" {
		t.Error("Expected default email from address")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_USER", "reviewzone")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing JWT secret, got nil")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  environment: testing
server:
  port: 9000
database:
  user: file-user
jwt:
  secret: file-secret
`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_READ_TIMEOUT", "15s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Expected env port 9100 to win, got %d", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("Expected env secret to win, got %q", cfg.JWT.Secret)
	}
	if cfg.Database.User != "file-user" {
		t.Errorf("Expected file database user kept, got %q", cfg.Database.User)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Expected read timeout from env, got %v", cfg.Server.ReadTimeout)
	}
}
