// Package registry provides directive registries for the shortcode
// engine: a concurrency-safe name-to-handler mapping, fuzzy name
// suggestions for diagnostics, and a loader that builds handlers from a
// YAML definitions file of expr programs.
//
// The engine itself only consumes the [lang.Registry] interface; embedders
// with their own handler source need nothing from this package.
package registry
