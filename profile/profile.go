package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Config holds all supported pprof configuration parameters.
type Config struct {
	// Mode selects the profiling mode; see [Modes] for supported values.
	// An empty or unknown mode disables profiling.
	Mode string
	// Path is the directory profile data is written to.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If build tag pprof or Mode are unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
