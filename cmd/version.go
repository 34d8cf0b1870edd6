// Package cmd holds build metadata for the flowmind binary.
package cmd

// Set with -ldflags "-X github.com/guncekal/text-to-processflow/cmd.Version=...".
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
