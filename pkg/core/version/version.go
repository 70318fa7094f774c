// ============================================================================
// strutil - ASCII string utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the libraries and the CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Foundation covers the stringx, urlx and parsex libraries
	Foundation = "0.2.0"

	// CLI covers cmd/strutil and the playground
	CLI = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "strutil", "playground":
		return CLI
	default:
		return Foundation
	}
}

// Info describes the running binary
type Info struct {
	Version    string
	Foundation string
	GitCommit  string
	BuildDate  string
	GoVersion  string
	Platform   string
}

// Get returns the build information of the CLI
func Get() Info {
	return Info{
		Version:    CLI,
		Foundation: Foundation,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the multi-line form printed by `strutil version`
func (i Info) String() string {
	return fmt.Sprintf("strutil v%s\n  Foundation: v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Version, i.Foundation, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
