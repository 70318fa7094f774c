// Package log provides structured logging for strutil.
//
// Package: log
// Title: strutil Structured Logging
// Description: This package implements a small structured logging system with
//              contextual fields, several output formats, level filtering and
//              integration with the strutil error type. The command line tool
//              logs through it; the string packages themselves never log.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Reduced to the CLI use case, stderr output and correlation IDs only
//
// Features:
// - JSON, text, console and logfmt output
// - Level filtering with trace, debug, info, warn and error
// - Immutable With* builders so derived loggers never affect their parent
// - LogError maps error severity to a log level
// - Timers for measuring command duration
//
// Usage:
//   import mdwlog "github.com/msto63/strutil/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithCorrelationID(uuid.NewString())
//
//   logger.Info("encoding input", mdwlog.Fields{"policy": "component"})
//
//   timer := logger.StartTimer("encode")
//   // ... work
//   timer.Stop()
package log
