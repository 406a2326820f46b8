package version

import "strings"

// Injected at build time, e.g.
// go build -ldflags "-X jseq/internal/version.Version=v0.2.0 -X jseq/internal/version.Commit=abc1234".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders "Version (Commit) Date", omitting unset parts.
func String() string {
	parts := []string{Version}
	if Commit != "" {
		parts = append(parts, "("+Commit+")")
	}
	if Date != "" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
