package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/paymill")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("WEBHOOK_TOKEN", "hook")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,,")
	t.Setenv("READ_ONLY", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/paymill" || cfg.JWTSecret != "secret" {
		t.Errorf("unexpected config %+v", cfg)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
	if !cfg.ReadOnly {
		t.Errorf("expected read only mode")
	}
	if cfg.WebhookToken != "hook" {
		t.Errorf("expected webhook token, got %q", cfg.WebhookToken)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{DatabaseURL: "postgres://localhost/paymill", JWTSecret: "secret", WebhookToken: "hook"}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"complete", func(*Config) {}, ""},
		{"no database url", func(c *Config) { c.DatabaseURL = "" }, "DATABASE_URL is required"},
		{"no jwt secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET is required"},
		{"no webhook token", func(c *Config) { c.WebhookToken = "" }, "WEBHOOK_TOKEN is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("FLAG_OK", "1")
	t.Setenv("FLAG_BAD", "maybe")

	if !getBool("FLAG_OK", false) {
		t.Errorf("expected true for 1")
	}
	if !getBool("FLAG_BAD", true) {
		t.Errorf("expected fallback for invalid value")
	}
	if getBool("FLAG_UNSET_FOR_TEST", false) {
		t.Errorf("expected fallback for unset value")
	}
}
