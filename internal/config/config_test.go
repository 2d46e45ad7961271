package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ProviderTimeout != 60*time.Second {
		t.Fatalf("provider timeout = %v", cfg.Server.ProviderTimeout)
	}
	if cfg.Gateway.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("gateway base = %q", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.Model == "" {
		t.Fatalf("gateway model must default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "15")
	t.Setenv("GATEWAY_API_KEY", "gw-key")
	t.Setenv("GATEWAY_MODEL", "gpt-4o-mini")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ProviderTimeout != 15*time.Second {
		t.Fatalf("provider timeout = %v", cfg.Server.ProviderTimeout)
	}
	if cfg.Gateway.APIKey != "gw-key" {
		t.Fatalf("gateway key not read")
	}
	if cfg.Gateway.Model != "gpt-4o-mini" {
		t.Fatalf("gateway model = %q", cfg.Gateway.Model)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Addr: ":8080", ProviderTimeout: time.Minute},
		Gateway: GatewayConfig{BaseURL: "https://openrouter.ai/api/v1", Model: "m"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := *cfg
	bad.Server.ProviderTimeout = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	bad = *cfg
	bad.Gateway.BaseURL = ""
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for empty gateway base URL")
	}
}
