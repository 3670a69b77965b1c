//go:build !pprof

package profile

import "sync"

// Modes returns an empty list when built without the pprof build tag.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string {
		return nil
	},
)

// start returns a no-op profiler when built without the pprof build tag.
func start(_, _ string, _ bool) interface{ Stop() } {
	return ignore{}
}
