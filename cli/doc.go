// Package cli contains the command line interface for shortcode.
//
// # Usage
//
//	# Render a document, expanding directives from a definitions file
//	shortcode render --defs shortcodes.yaml page.md
//
//	# Verify every directive in a document resolves
//	shortcode check --defs shortcodes.yaml page.md
//
//	# Inspect the parsed node tree
//	shortcode fmt yaml page.md
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
