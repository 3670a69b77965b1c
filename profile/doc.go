// Package profile provides optional runtime profiling for the fixtool
// application.
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (default), all operations are no-ops with
// zero runtime overhead.
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// A profiler is configured as a [Config] closure and started with
// [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", true
//	}
//	defer cfg.Start().Stop()
//
// The fixtool command exposes profiling through flags when built with the
// pprof tag:
//
//	go build -tags pprof -o fixtool .
//	./fixtool --pprof-mode=cpu parse fixtures.txt
//
// Profile files are written to the directory given by --pprof-dir, which
// defaults to the pprof subdirectory of the user cache directory. Analyze
// them with:
//
//	go tool pprof ./fixtool cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
