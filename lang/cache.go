package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// documentCache stores parsed Documents keyed by source content hash.
// Content pipelines re-render unchanged sources repeatedly; a cached
// Document is immutable after parsing and safe to share across renders.
var documentCache sync.Map

// ParseReader parses a Document from an io.Reader.
// The parsed result is cached by content, as with [ParseString].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	// This allows data to be pre-fetched while we process previous chunks.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...), nil
}

// parseStringCached parses a string with default options, caching the
// result by content hash.
func parseStringCached(ctx context.Context, source string) *Document {
	// xxhash3 keeps cache keys cheap relative to the parse itself.
	key := strconv.FormatUint(xxh3.HashString(source), 36)

	if value, hit := documentCache.Load(key); hit {
		if doc, ok := value.(*Document); ok {
			doc.logger.TraceContext(ctx, "cache lookup",
				slog.String("source_hash", key),
				slog.Bool("cache_hit", true))

			return doc
		}
	}

	doc := parseString(ctx, source)
	documentCache.Store(key, doc)

	return doc
}

// ClearCache removes all cached documents.
// This is primarily useful for testing or when memory needs to be
// reclaimed.
func ClearCache() {
	documentCache.Range(func(key, _ any) bool {
		documentCache.Delete(key)

		return true
	})
}
