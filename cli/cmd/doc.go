// Package cmd implements the subst subcommands.
//
// Each command reads a JSON source document from a file argument or standard
// input, and writes its result to standard output. Diagnostics are written
// to standard error through the log package so that output documents remain
// machine-readable.
//
//   - [Resolve] flattens the document, resolves every placeholder, and
//     writes the reconstructed document as JSON or YAML.
//   - [Flatten] writes the flattened path map without resolving anything.
//   - [Keys] lists the flattened keys, optionally filtered by fuzzy match.
package cmd
