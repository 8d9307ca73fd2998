package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_NAME", "demo-store")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_test")
	t.Setenv("SHOPIFY_API_VERSION", "2024-01")
	t.Setenv("REDIS_URL", "redis.internal:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ShopName != "demo-store" {
		t.Errorf("ShopName = %q, want demo-store", cfg.ShopName)
	}
	if cfg.AccessToken != "shpat_test" {
		t.Errorf("AccessToken = %q, want shpat_test", cfg.AccessToken)
	}
	if cfg.APIVersion != "2024-01" {
		t.Errorf("APIVersion = %q, want 2024-01", cfg.APIVersion)
	}
	if cfg.RedisAddr != "redis.internal:6379" {
		t.Errorf("RedisAddr = %q, want redis.internal:6379", cfg.RedisAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no config file in the search path

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIVersion != "2023-10" {
		t.Errorf("APIVersion = %q, want 2023-10", cfg.APIVersion)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "shop_name: file-store\naccess_token: file-token\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ShopName != "file-store" {
		t.Errorf("ShopName = %q, want file-store", cfg.ShopName)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("shop_name: file-store\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SHOPIFY_SHOP_NAME", "env-store")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ShopName != "env-store" {
		t.Errorf("ShopName = %q, want env-store", cfg.ShopName)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}
