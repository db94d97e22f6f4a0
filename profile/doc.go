// Package profile provides optional runtime profiling for the subst
// application.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
/// The following profiling modes are supported when built with the tag:
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, trace.
// Use [Modes] to retrieve the list programmatically.
//
//	ctrl := profile.Config{Mode: "cpu", Path: "/tmp/profiles"}.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g. cpu.pprof) and analyzed with:
//
//	go tool pprof ./subst /tmp/profiles/cpu.pprof
//
// When built with the tag, the package also imports [net/http/pprof], which
// registers HTTP handlers at /debug/pprof/ for applications that start an
// HTTP server.
package profile
