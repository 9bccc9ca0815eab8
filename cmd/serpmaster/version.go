package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Populated by the release pipeline via -ldflags. Empty in a plain
// `go build`, in which case buildDetails falls back to the build info
// the Go toolchain embeds in the binary.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildDetails resolves the version, commit, and build date, preferring
// ldflags values over embedded module build info.
func buildDetails() (string, string, string) {
	v, c, d := version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" {
			v = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if c == "" {
					c = shortRevision(setting.Value)
				}
			case "vcs.time":
				if d == "" {
					d = setting.Value
				}
			}
		}
	}

	if v == "" {
		v = "(devel)"
	}
	if c == "" {
		c = "unknown"
	}
	if d == "" {
		d = "unknown"
	}

	return v, c, d
}

// shortRevision abbreviates a VCS revision to the conventional 7 chars.
func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns just the version string, for cobra's --version flag.
func getVersion() string {
	v, _, _ := buildDetails()
	return v
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the serpmaster version, the commit it was built from, and the build date.`,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildDetails()
			fmt.Fprintf(cmd.OutOrStdout(), "serpmaster %s (commit %s, built %s)\n", v, c, d)
		},
	}
}
