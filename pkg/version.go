package gbifprep

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"
	// Build contains the timestamp of the build.
	Build = "n/a"
)
