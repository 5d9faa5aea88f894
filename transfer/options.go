package transfer

import "log/slog"

// Options configures a Committer.
type Options struct {
	// Trim skips slots at either end of the commit window whose content
	// matches what was last transferred.
	Trim bool

	// Logger receives per-commit debug records. Nil uses the package logger.
	Logger *slog.Logger
}

// DefaultOptions returns options with trimming enabled.
func DefaultOptions() Options {
	return Options{Trim: true}
}
