package cmd

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/shortcode/lang"
	"github.com/ardnew/shortcode/log"
	"github.com/ardnew/shortcode/registry"
)

// ErrUnresolvedDirectives reports directive calls with no registered
// definition.
var ErrUnresolvedDirectives = lang.NewError("unresolved directives")

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the named source file, or stdin for "-".
// The returned cleanup function is a no-op for stdin.
func openSource(path string) (*os.File, func(), error) {
	if path == stdinSource {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return file, func() { _ = file.Close() }, nil
}

// parseSource reads and parses a document source, "-" meaning stdin.
func parseSource(ctx context.Context, path string) (*lang.Document, error) {
	file, done, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer done()

	return lang.ParseReader(ctx, bufio.NewReader(file))
}

// loadDefinitions opens and compiles a YAML definitions file into a
// directive registry.
func loadDefinitions(
	ctx context.Context,
	path string,
) (*registry.Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, registry.ErrReadDefinitions.Wrap(err).
			With(slog.String("path", path))
	}
	defer file.Close()

	reg, err := registry.LoadDefinitions(file)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "definitions loaded",
		slog.String("path", path),
		slog.Int("count", len(reg.Names())),
	)

	return reg, nil
}
