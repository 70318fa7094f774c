// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads the strutil configuration from TOML or
//              YAML files with environment overrides, defaults, discovery,
//              validation and fsnotify based reloading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: strutil keys, parsex getters, fsnotify watcher

/*
Package config provides configuration management for the strutil tools.

Key Features:
  • TOML and YAML files with detection by extension
  • Dot-notation keys ("encode.policy")
  • Environment overrides: encode.policy is overridden by STRUTIL_ENCODE_POLICY
  • Defaults for every recognised key, reapplied on reload
  • Typed access through parsex, so booleans accept 1/true/on/yes and 0/false/off/no
  • Rule based validation
  • Hot reloading with fsnotify and change notification callbacks

# Loading

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	policy := cfg.GetString(config.KeyEncodePolicy)

Discover searches ./strutil.toml, ./config.toml (and the YAML variants),
then the user configuration directory and /etc/strutil. Without a file it
returns a config that holds only the defaults.

# Typed Access

	width, err := config.Get[int](cfg, "pad.width")
	if err != nil {
		// NOT_FOUND when missing, CONFIG_INVALID_VALUE when not an int
	}
	verbose := cfg.GetBool("log.verbose", false)

# Validation

	result := cfg.Validate(config.ValidationRules{
		config.KeyLogLevel: {OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		config.KeyPadChar:  {MinLen: 1, MaxLen: 1},
	})
	if err := result.Err(); err != nil {
		return err
	}

# Watching

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		apply(newCfg.GetString(config.KeyEncodePolicy))
	})
	cfg.OnError(func(err error) { logger.LogError(err) })
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()

Handlers run on the watcher goroutine. StopWatching waits for that goroutine
to exit, so it must not be called from inside a handler.
*/
package config
