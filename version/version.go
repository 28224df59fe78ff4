package version

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the short version string
func String() string {
	return Version
}

// Full returns the version with commit and build date
func Full() string {
	if Version == "dev" {
		return "dev"
	}
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}
