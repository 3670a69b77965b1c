// Package cli contains the command line interface for fixtool.
//
// # Usage
//
// Fixture text is read from files or stdin and processed by one of three
// subcommands:
//
//	# Parse fixture text into file descriptors (default command)
//	fixtool parse fixtures.txt
//	fixtool parse --format=yaml - < fixtures.txt
//
//	# Resolve minicore source for a set of activated flags
//	fixtool core option iterator
//
//	# Validate fixture files without producing output
//	fixtool check fixtures.txt more.txt
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o fixtool .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//
// # Configuration
//
// Default flag values may be supplied in a JSON config file located in the
// user configuration directory (e.g. ~/.config/fixtool/config.json).
// Command-line flags override config file values.
package cli
