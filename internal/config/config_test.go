package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_USER", "foodgram")
	t.Setenv("DATABASE_PASSWORD", "foodgram")
	t.Setenv("DATABASE", "foodgram")
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	t.Setenv("APP_SECRET_PATH", filepath.Join(dir, "secret"))
	return dir
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError string
		validate  func(*testing.T, *Config)
	}{
		{
			name:  "defaults",
			setup: setDatabaseEnv,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.Server.Port != 8080 {
					t.Errorf("expected Server.Port 8080, got %d", c.Server.Port)
				}
				if c.Database.Port != 5432 || c.Database.Host != "localhost" {
					t.Errorf("unexpected database defaults %+v", c.Database)
				}
				if c.Storage.Backend != StorageDisk {
					t.Errorf("expected disk backend, got %q", c.Storage.Backend)
				}
				if c.Storage.Disk.URLPrefix != "/media" {
					t.Errorf("expected /media prefix, got %q", c.Storage.Disk.URLPrefix)
				}
				if len(c.CORS.AllowedOrigins) != 1 || c.CORS.AllowedOrigins[0] != c.HostOrigin {
					t.Errorf("expected CORS to default to host origin, got %v", c.CORS.AllowedOrigins)
				}
				if c.AppSecret.Value == nil {
					t.Error("expected AppSecret.Value to be generated")
				}
			},
		},
		{
			name: "custom values",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("ENV", "PROD")
				t.Setenv("HOST_ORIGIN", "https://foodgram.example.com")
				t.Setenv("SERVER_PORT", "9000")
				t.Setenv("APP_SECRET", "this-is-a-very-long-secret-key-with-more-than-32-bytes")
				t.Setenv("DATABASE_HOST", "db.example.com")
				t.Setenv("DATABASE_PORT", "5433")
				t.Setenv("STORAGE_BACKEND", "minio")
				t.Setenv("MINIO_ENDPOINT", "s3.example.com:9000")
				t.Setenv("MINIO_ACCESS_KEY", "access")
				t.Setenv("MINIO_SECRET_KEY", "secret")
				t.Setenv("MINIO_BUCKET", "foodgram-images")
				t.Setenv("MINIO_USE_SSL", "true")
				t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
				t.Setenv("ADMIN_USERNAME", "chef")
				t.Setenv("ADMIN_FIRST_NAME", "Julia")
				t.Setenv("ADMIN_LAST_NAME", "Child")
				t.Setenv("ADMIN_EMAIL", "chef@example.com")
				t.Setenv("ADMIN_PASSWORD", "boeuf-bourguignon-1961")
			},
			validate: func(t *testing.T, c *Config) {
				if !c.IsProd() {
					t.Error("expected production config")
				}
				if c.Server.Port != 9000 {
					t.Errorf("expected port 9000, got %d", c.Server.Port)
				}
				if string(*c.AppSecret.Value) != "this-is-a-very-long-secret-key-with-more-than-32-bytes" {
					t.Error("expected provided app secret")
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected database port 5433, got %d", c.Database.Port)
				}
				if !c.Storage.Minio.UseSSL || c.Storage.Minio.Bucket != "foodgram-images" {
					t.Errorf("unexpected minio config %+v", c.Storage.Minio)
				}
				if len(c.CORS.AllowedOrigins) != 2 {
					t.Errorf("expected 2 origins, got %v", c.CORS.AllowedOrigins)
				}
				if c.Admin.Username != "chef" {
					t.Errorf("expected admin chef, got %q", c.Admin.Username)
				}
			},
		},
		{
			name:      "missing database credentials",
			setup:     func(t *testing.T) {},
			wantError: "Database configuration is incomplete",
		},
		{
			name: "partial admin",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("ADMIN_EMAIL", "chef@example.com")
			},
			wantError: "Admin configuration is incomplete",
		},
		{
			name: "weak admin password",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("ADMIN_USERNAME", "chef")
				t.Setenv("ADMIN_FIRST_NAME", "Julia")
				t.Setenv("ADMIN_LAST_NAME", "Child")
				t.Setenv("ADMIN_EMAIL", "chef@example.com")
				t.Setenv("ADMIN_PASSWORD", "short")
			},
			wantError: "Password",
		},
		{
			name: "minio backend without minio section",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("STORAGE_BACKEND", "minio")
			},
			wantError: "requires the minio section",
		},
		{
			name: "unknown backend",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("STORAGE_BACKEND", "ftp")
			},
			wantError: "Backend",
		},
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("DATABASE_PORT", "not-a-port")
			},
			wantError: "invalid DATABASE_PORT",
		},
		{
			name: "short secret",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("APP_SECRET", "short")
			},
			wantError: "AppSecret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			tt.setup(t)

			c, err := LoadConfig()
			if tt.wantError != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantError)
				}
				if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("expected error containing %q, got %v", tt.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, &c)
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "foodgram.yaml")
	contents := `
env: DEV
host_origin: http://localhost:3000
server:
  port: 8081
app_secret:
  path: ` + filepath.Join(dir, "file-secret") + `
database:
  host: postgres
  database: foodgram
  user: foodgram
  password: foodgram
storage:
  backend: disk
  disk:
    volume: ` + filepath.Join(dir, "media") + `
cors:
  allowed_origins:
    - http://localhost:3000
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Server.Port != 8081 {
		t.Errorf("expected port 8081, got %d", c.Server.Port)
	}
	if c.Database.Port != 5432 {
		t.Errorf("expected default database port, got %d", c.Database.Port)
	}
	if c.Storage.Disk.URLPrefix != "/media" {
		t.Errorf("expected default url prefix, got %q", c.Storage.Disk.URLPrefix)
	}
	if c.AppSecret.Value == nil {
		t.Fatal("expected generated secret")
	}

	// The generated secret is persisted and reused.
	again, err := LoadConfig()
	if err != nil {
		t.Fatalf("second LoadConfig() error = %v", err)
	}
	if *again.AppSecret.Value != *c.AppSecret.Value {
		t.Error("expected the persisted secret to be reused")
	}
}

func TestLoadAppSecretDirectory(t *testing.T) {
	c := Config{AppSecret: AppSecret{Path: t.TempDir()}}
	if err := loadAppSecret(&c); err == nil || !strings.Contains(err.Error(), "directory") {
		t.Errorf("expected directory error, got %v", err)
	}
}
