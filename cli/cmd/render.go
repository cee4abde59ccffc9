package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/shortcode/lang"
	"github.com/ardnew/shortcode/log"
	"github.com/ardnew/shortcode/registry"
)

// Render parses a document and expands each directive through the
// definitions registry, writing rendered output to stdout.
type Render struct {
	Defs    string `help:"YAML definitions file mapping directive names to expressions." required:"" short:"d" type:"existingfile"`
	Lenient bool   `help:"Leave unresolved directives in place instead of aborting."`

	Source string `arg:"" default:"-" help:"Document source file or '-' for default stdin." name:"source"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	reg, err := loadDefinitions(ctx, r.Defs)
	if err != nil {
		return err
	}

	var opts []lang.Option

	if r.Lenient {
		opts = append(opts, lang.WithFallback(
			func(call *lang.Call, err error) (string, error) {
				log.WarnContext(ctx, "directive left in place",
					slog.String("name", call.Name),
					slog.Any("error", err),
				)

				return call.Source(), nil
			},
		))
	}

	doc, err := parseSource(ctx, r.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("source", r.Source))
	}

	out, err := doc.Render(ctx, reg, opts...)
	if err != nil {
		return suggest(err, doc, reg).
			With(slog.String("source", r.Source))
	}

	_, err = io.WriteString(os.Stdout, out)

	return err
}

// suggest decorates an unknown-directive failure with fuzzy name
// suggestions from the registry.
func suggest(
	err error,
	doc *lang.Document,
	reg *registry.Map,
) *lang.Error {
	werr := lang.WrapError(err)

	if !errors.Is(err, lang.ErrUnknownDirective) {
		return werr
	}

	// Render aborts on the first unresolved call, so the first name
	// absent from the registry is the one that failed.
	for call := range doc.Calls() {
		if _, found := reg.Lookup(call.Name); found {
			continue
		}

		if hints := reg.Suggest(call.Name, 3); len(hints) > 0 {
			return werr.With(
				slog.String("did_you_mean", strings.Join(hints, ", ")),
			)
		}

		break
	}

	return werr
}
