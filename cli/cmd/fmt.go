package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/shortcode/lang"
)

// Fmt parses a document and prints its node tree in the chosen format.
type Fmt struct {
	JSON JSON `cmd:"" default:"withargs" help:"Format as JSON (default)."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
	AST  AST  `cmd:""                    help:"Format as a node-per-line tree."`
}

// JSON parses a document and prints its node tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Document source file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "json"))
	}

	return doc.FormatJSON(os.Stdout, j.Indent)
}

// YAML parses a document and prints its node tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Document source file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return doc.FormatYAML(os.Stdout, y.Indent)
}

// AST parses a document and prints a compact node-per-line tree.
type AST struct {
	Source string `arg:"" default:"-" help:"Document source file or '-' for default stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := parseSource(ctx, a.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "ast"))
	}

	doc.Print(os.Stdout)

	return nil
}
