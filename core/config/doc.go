// Package config provides configuration loading for the tsmath library and CLI.
//
// Package: config
// Title: tsmath Configuration Management
// Description: This package loads configuration from TOML and YAML files with
//              auto-detection by file extension, dot-notation access to nested
//              values, typed getters with defaults, and optional environment
//              variable overrides. The arithmetic packages are configuration-free
//              by design; configuration concerns only the CLI defaults such as
//              the calendar time zone and output precision.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/tsmath/core/config"
//
//   cfg, err := config.Load("tsmath.toml")
//   if err != nil {
//       // handle error
//   }
//
//   zone := cfg.GetString("series.zone", "America/Chicago")
//   precision := cfg.GetInt("output.precision", 6)
package config
