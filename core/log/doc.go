// Package log provides structured logging for the tsmath library and CLI.
//
// Package: log
// Title: tsmath Structured Logging
// Description: This package implements a small leveled logger with contextual
//              fields and deterministic text output. The library itself never
//              logs from arithmetic operations (they are pure functions); the
//              logger exists for the CLI and for configuration loading, where
//              diagnostics are genuinely useful.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with leveled structured logging
//
// Usage:
//   import "github.com/msto63/tsmath/core/log"
//
//   logger := log.GetDefault().WithName("series")
//   logger.Info("series constructed", log.Fields{
//       "observations": 12,
//       "zone":         "America/Chicago",
//   })
package log
