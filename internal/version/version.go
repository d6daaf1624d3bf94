package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/bjk2k/red-panda/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/bjk2k/red-panda/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/bjk2k/red-panda/internal/version.Date={{.Date}}
)
