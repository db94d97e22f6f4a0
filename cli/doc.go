// Package cli contains the command line interface for subst.
//
// # Usage
//
// The default command resolves placeholders in a JSON document read from a
// file or standard input and writes the resolved document to standard
// output:
//
//	subst resolve config.json
//	cat config.json | subst
//
// Two auxiliary commands expose the intermediate representation:
//
//	subst flatten config.json   # print the flattened path map, unresolved
//	subst keys config.json      # list flattened document keys
//
// # Configuration
//
// Flag defaults may be provided in a config file located in the user's
// configuration directory (e.g., ~/.config/subst/config.yaml or
// config.json). Top-level keys correspond to flag names, with underscores
// accepted in place of hyphens. Command-line flags override config file
// values. See [loadConfig] for the YAML loader details.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing of text output
//
// All log output is written to standard error so that resolved documents on
// standard output remain machine-readable.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o subst .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/subst/pprof)
//
// # Examples
//
//	# Resolve with debug logging
//	subst --log-level=debug resolve config.json
//
//	# Emit YAML instead of JSON
//	subst resolve --output=yaml config.json
//
//	# Tolerate ambiguous shorthand keys by taking the first match
//	subst resolve --first-match config.json
package cli
