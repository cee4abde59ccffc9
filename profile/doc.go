// Package profile provides optional runtime profiling for the shortcode
// command.
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation support. Profiling must be enabled at build time using the
// "pprof" build tag:
//
//	go build -tags pprof ./...
//
// When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically.
//
//	var cfg profile.Config = func() (string, string, bool) {
//		return "cpu", "/tmp/profiles", true
//	}
//	defer cfg.Start().Stop()
package profile
