package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/shortcode/log"
)

// Check parses a document and verifies that every directive call
// resolves against the definitions registry, without rendering.
type Check struct {
	Defs string `help:"YAML definitions file mapping directive names to expressions." required:"" short:"d" type:"existingfile"`

	Source string `arg:"" default:"-" help:"Document source file or '-' for default stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	reg, err := loadDefinitions(ctx, c.Defs)
	if err != nil {
		return err
	}

	doc, err := parseSource(ctx, c.Source)
	if err != nil {
		return err
	}

	var calls, unknown int

	for call := range doc.Calls() {
		calls++

		if _, found := reg.Lookup(call.Name); found {
			continue
		}

		unknown++

		attrs := []slog.Attr{
			slog.String("name", call.Name),
			slog.Int("offset", call.Range().Start),
		}

		if hints := reg.Suggest(call.Name, 3); len(hints) > 0 {
			attrs = append(attrs,
				slog.String("did_you_mean", strings.Join(hints, ", ")),
			)
		}

		log.ErrorContext(ctx, "unknown directive", attrs...)
	}

	if unknown > 0 {
		return ErrUnresolvedDirectives.
			With(
				slog.String("source", c.Source),
				slog.Int("count", unknown),
			)
	}

	log.InfoContext(ctx, "all directives resolve",
		slog.String("source", c.Source),
		slog.Int("calls", calls),
		slog.Int("defined", len(reg.Names())),
	)

	return nil
}
