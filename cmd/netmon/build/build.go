package build

// overridden at build time via ldflags
var (
	Version = "development" // nolint: gochecknoglobals
	Commit  = "-"           // nolint: gochecknoglobals
	Time    = "-"           // nolint: gochecknoglobals
)
