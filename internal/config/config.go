// Package config loads shopcat configuration from the environment and an
// optional YAML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds everything the commands need.
type Config struct {
	// ShopName is the store subdomain (without .myshopify.com).
	ShopName string

	// AccessToken is the Admin API access token.
	AccessToken string

	// APIVersion is the Admin API version.
	APIVersion string

	// RedisAddr is the secondary store address.
	RedisAddr string

	// LogLevel is the minimum log level.
	LogLevel string
}

// Load reads configuration from the optional config file and the
// environment. Environment variables win over file values; flags are
// applied on top by the caller.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shopcat"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("api_version", "2023-10")
	v.SetDefault("redis_url", "localhost:6379")
	v.SetDefault("log_level", "info")

	// Env names follow the store's existing private-app setup.
	_ = v.BindEnv("shop_name", "SHOPIFY_SHOP_NAME")
	_ = v.BindEnv("access_token", "SHOPIFY_ACCESS_TOKEN")
	_ = v.BindEnv("api_version", "SHOPIFY_API_VERSION")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must load.
		if cfgFile != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		ShopName:    v.GetString("shop_name"),
		AccessToken: v.GetString("access_token"),
		APIVersion:  v.GetString("api_version"),
		RedisAddr:   v.GetString("redis_url"),
		LogLevel:    v.GetString("log_level"),
	}, nil
}
