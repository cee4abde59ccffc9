// Package cmd implements the shortcode CLI subcommands.
//
// Each command reads one document source (a file path or "-" for stdin),
// parses it with the lang package, and either renders it against a
// definitions registry (render), verifies it resolves (check), or dumps
// the parsed node tree (fmt).
package cmd
