// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/tashoecraft/rx-go/config"
//
//	type BridgeConfig struct {
//		RedisURL string `env:"REDIS_URL,required"`
//		Channel  string `env:"BRIDGE_CHANNEL" envDefault:"events"`
//	}
//
//	func main() {
//		var cfg BridgeConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 BridgeConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 BridgeConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so every integration package can
// declare its own Config struct and load it without interference. Tests that
// change environment variables should call Reset between loads.
package config
